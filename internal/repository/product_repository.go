package repository

import (
	"context"
	"errors"

	"okean/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductListQuery drives product listing: string-contains search over the
// three name columns, price range, sort and pagination.
type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string // "", "new", "price_asc", "price_desc", "name"
	Featured   bool
}

type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	// ListAdmin includes inactive products.
	ListAdmin(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	// DecreaseStockIfEnough atomically decrements stock, failing when the
	// remaining quantity is insufficient.
	DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error)
	// RestoreStock adds qty back, used when an order is cancelled.
	RestoreStock(ctx context.Context, productID string, qty int64) error
}

// WarehouseRepository serves the stock screen: products ordered by stock
// ascending, plus stock writes paired with an adjustment history row.
type WarehouseRepository interface {
	ListByStock(ctx context.Context, page int, limit int) ([]model.Product, int64, error)
	SetStockWithAdjustment(ctx context.Context, adj model.StockAdjustment, newStock int64) error
	ListAdjustments(ctx context.Context, productID string, limit int) ([]model.StockAdjustment, error)
}
