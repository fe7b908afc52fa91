package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"
	"time"

	"okean/internal/cart"
	"okean/internal/domain/model"
	repo "okean/internal/repository"
	"okean/internal/session"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders}
}

// CheckoutInput is the contact block the visitor fills in at checkout.
// UserID is empty for guest orders.
type CheckoutInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
}

type OrderOutput struct {
	ID          string            `json:"id"`
	OrderNumber string            `json:"order_number"`
	Status      string            `json:"status"`
	TotalAmount float64           `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []model.OrderItem `json:"items"`
}

// Checkout turns the visitor's session cart into a pending order. Stock
// is re-checked and decremented inside one transaction; any shortage
// rolls the whole order back and the cart stays intact.
func (u *OrderUsecase) Checkout(ctx context.Context, sess *session.Session, userID string, in CheckoutInput) (OrderOutput, error) {
	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.CustomerEmail)
	if name == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer_name required")
	}
	if email == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer_email required")
	}

	var lines []cart.Line
	sess.Do(func(c *cart.Cart) {
		lines = c.Lines()
	})
	if len(lines) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	order := model.Order{
		ID:            uuid.NewString(),
		OrderNumber:   newOrderNumber(),
		Status:        model.OrderStatusPending,
		CustomerName:  name,
		CustomerEmail: email,
		// set here so the response carries the timestamp; the repo only
		// sees a copy of the struct
		CreatedAt: time.Now(),
	}
	if userID != "" {
		order.UserID = &userID
	}
	if v := strings.TrimSpace(in.CustomerPhone); v != "" {
		order.CustomerPhone = &v
	}
	if v := strings.TrimSpace(in.ShippingAddress); v != "" {
		order.ShippingAddress = &v
	}
	if v := strings.TrimSpace(in.Notes); v != "" {
		order.Notes = &v
	}

	var items []model.OrderItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items = items[:0]
		var total float64

		for _, l := range lines {
			p, err := r.Products().FindByID(ctx, l.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "product no longer available")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, "product no longer available")
			}

			ok, err := r.Products().DecreaseStockIfEnough(ctx, l.ProductID, l.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "out of stock")
			}

			// the cart already carries a price snapshot from add time
			lineTotal := l.UnitPrice * float64(l.Quantity)
			items = append(items, model.OrderItem{
				ID:          uuid.NewString(),
				OrderID:     order.ID,
				ProductID:   l.ProductID,
				ProductName: l.Name,
				UnitPrice:   l.UnitPrice,
				Quantity:    l.Quantity,
				TotalPrice:  lineTotal,
			})
			total += lineTotal
		}

		order.TotalAmount = total
		if err := r.Orders().CreateWithItems(ctx, order, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	sess.Do(func(c *cart.Cart) {
		c.Clear()
	})

	return OrderOutput{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}, nil
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string, page int, limit int) (OrderListOutput, error) {
	if userID == "" {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 || limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	orders, total, err := u.orders.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListOutput{Items: orders, Total: total, Page: page, Limit: limit}, nil
}

func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID string, orderID string) (OrderOutput, error) {
	if userID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if o.UserID == nil || *o.UserID != userID {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	items, err := u.orders.ListItems(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderOutput{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}, nil
}

// newOrderNumber builds a human-readable order number: OK-YYYYMMDD-XXXX
// with a random hex suffix.
func newOrderNumber() string {
	b := make([]byte, 2)
	_, _ = rand.Read(b)
	return fmt.Sprintf("OK-%s-%02X%02X", time.Now().Format("20060102"), b[0], b[1])
}
