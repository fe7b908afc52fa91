package usecase

import (
	"context"
	"testing"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminOrderUC(orders *OrderRepoMock, products *ProductRepoMock, audit *AuditRepoMock) *AdminOrderUsecase {
	tx := &TxManagerStub{orders: orders, products: products}
	return NewAdminOrderUsecase(tx, orders, audit)
}

func TestAdminOrderUsecase_UpdateStatus_Success(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	audit := new(AuditRepoMock)
	uc := newAdminOrderUC(orders, products, audit)

	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusPending}, nil)
	orders.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusConfirmed).Return(nil)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateOrderStatus &&
			l.ResourceID == "o1" &&
			l.BeforeJSON == `{"status":"pending"}` &&
			l.AfterJSON == `{"status":"confirmed"}`
	})).Return(nil)

	err := uc.UpdateStatus(context.Background(), "admin1", "o1", model.OrderStatusConfirmed)
	assert.NoError(t, err)

	orders.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_CancelRestoresStock(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	audit := new(AuditRepoMock)
	uc := newAdminOrderUC(orders, products, audit)

	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusConfirmed}, nil)
	orders.On("ListItems", mock.Anything, "o1").Return([]model.OrderItem{
		{OrderID: "o1", ProductID: "p1", Quantity: 2},
		{OrderID: "o1", ProductID: "p2", Quantity: 5},
	}, nil)
	products.On("RestoreStock", mock.Anything, "p1", int64(2)).Return(nil)
	products.On("RestoreStock", mock.Anything, "p2", int64(5)).Return(nil)
	orders.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusCancelled).Return(nil)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := uc.UpdateStatus(context.Background(), "admin1", "o1", model.OrderStatusCancelled)
	assert.NoError(t, err)

	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_TerminalOrderRejected(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	audit := new(AuditRepoMock)
	uc := newAdminOrderUC(orders, products, audit)

	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusDelivered}, nil)

	err := uc.UpdateStatus(context.Background(), "admin1", "o1", model.OrderStatusCancelled)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)

	audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_SameStatusNoAudit(t *testing.T) {
	orders := new(OrderRepoMock)
	products := new(ProductRepoMock)
	audit := new(AuditRepoMock)
	uc := newAdminOrderUC(orders, products, audit)

	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusPending}, nil)

	err := uc.UpdateStatus(context.Background(), "admin1", "o1", model.OrderStatusPending)
	assert.NoError(t, err)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := newAdminOrderUC(new(OrderRepoMock), new(ProductRepoMock), new(AuditRepoMock))

	err := uc.UpdateStatus(context.Background(), "admin1", "o1", model.OrderStatus("teleported"))
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := newAdminOrderUC(orders, new(ProductRepoMock), new(AuditRepoMock))

	orders.On("FindByID", mock.Anything, "missing").Return(model.Order{}, repo.ErrNotFound)

	err := uc.UpdateStatus(context.Background(), "admin1", "missing", model.OrderStatusConfirmed)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestAdminOrderUsecase_ListOrders_InvalidStatusFilter(t *testing.T) {
	uc := newAdminOrderUC(new(OrderRepoMock), new(ProductRepoMock), new(AuditRepoMock))

	_, err := uc.ListOrders(context.Background(), AdminOrderListInput{Page: 1, Limit: 20, Status: "nope"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAdminOrderUsecase_GetOrder_IncludesItems(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := newAdminOrderUC(orders, new(ProductRepoMock), new(AuditRepoMock))

	orders.On("FindByID", mock.Anything, "o1").Return(model.Order{ID: "o1", Status: model.OrderStatusPending}, nil)
	orders.On("ListItems", mock.Anything, "o1").Return([]model.OrderItem{{OrderID: "o1", ProductID: "p1", Quantity: 1}}, nil)

	out, err := uc.GetOrder(context.Background(), "o1")
	assert.NoError(t, err)
	assert.Equal(t, "o1", out.Order.ID)
	assert.Len(t, out.Items, 1)
}
