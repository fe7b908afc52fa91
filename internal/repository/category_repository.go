package repository

import (
	"context"

	"okean/internal/domain/model"
)

type CategoryRepository interface {
	// ListActive returns active categories ordered by sort_order.
	ListActive(ctx context.Context) ([]model.Category, error)
	// ListAll returns every category for the back office, ordered by sort_order.
	ListAll(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
	FindByID(ctx context.Context, id string) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
