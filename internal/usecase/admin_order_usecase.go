package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/google/uuid"
)

type AdminOrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	auditRepo repo.AuditLogRepository
}

func NewAdminOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	auditRepo repo.AuditLogRepository,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		tx:        tx,
		orders:    orders,
		auditRepo: auditRepo,
	}
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status string
	Q      string
	From   *time.Time
	To     *time.Time
}

func (u *AdminOrderUsecase) ListOrders(ctx context.Context, in AdminOrderListInput) (OrderListOutput, error) {
	if in.Page < 1 || in.Limit < 1 || in.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Status != "" && !model.ValidOrderStatus(model.OrderStatus(in.Status)) {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orders.ListAdmin(ctx, repo.AdminOrderListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
		Q:      in.Q,
		From:   in.From,
		To:     in.To,
	})
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{Items: orders, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

type AdminOrderDetailOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

func (u *AdminOrderUsecase) GetOrder(ctx context.Context, orderID string) (AdminOrderDetailOutput, error) {
	if orderID == "" {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orders.ListItems(ctx, orderID)
	if err != nil {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminOrderDetailOutput{Order: o, Items: items}, nil
}

// UpdateStatus moves an order to a new status. Cancelling a live order
// restores the reserved stock inside the same transaction; delivered and
// cancelled orders are terminal.
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, adminUserID string, orderID string, newStatus model.OrderStatus) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if !model.ValidOrderStatus(newStatus) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var before model.OrderStatus

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		before = o.Status
		if before == newStatus {
			return nil
		}
		if before == model.OrderStatusDelivered || before == model.OrderStatusCancelled {
			return NewHTTPError(http.StatusConflict, "order is final")
		}

		if newStatus == model.OrderStatusCancelled {
			items, err := r.Orders().ListItems(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			for _, it := range items {
				if err := r.Products().RestoreStock(ctx, it.ProductID, it.Quantity); err != nil && err != repo.ErrNotFound {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if before == newStatus {
		return nil
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ID:           uuid.NewString(),
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   orderID,
		BeforeJSON:   fmt.Sprintf(`{"status":%q}`, before),
		AfterJSON:    fmt.Sprintf(`{"status":%q}`, newStatus),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
