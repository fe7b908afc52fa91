package repository

import (
	"context"
	"time"

	"okean/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	Q      string // matches order number, customer name or email
	From   *time.Time
	To     *time.Time
}

// StatusCount is one row of the orders-by-status report.
type StatusCount struct {
	Status model.OrderStatus `json:"status"`
	Count  int64             `json:"count"`
}

// TopProduct is one row of the top-sellers report.
type TopProduct struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order model.Order, items []model.OrderItem) error
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	ListByUserID(ctx context.Context, userID string, page int, limit int) ([]model.Order, int64, error)
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error

	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}
