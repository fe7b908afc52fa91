package repository

import (
	"context"
	"errors"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"gorm.io/gorm"
)

type WarehouseGormRepository struct {
	db *gorm.DB
}

func NewWarehouseGormRepository(db *gorm.DB) *WarehouseGormRepository {
	return &WarehouseGormRepository{db: db}
}

// ListByStock orders lowest stock first, the way the warehouse screen
// shows it.
func (r *WarehouseGormRepository) ListByStock(ctx context.Context, page int, limit int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := tx.Order("stock_quantity asc").Order("id asc").
		Offset(offset).Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// SetStockWithAdjustment writes the new absolute stock level and the
// adjustment history row in one transaction. adj.Delta is recomputed
// here from the current stock.
func (r *WarehouseGormRepository) SetStockWithAdjustment(ctx context.Context, adj model.StockAdjustment, newStock int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.Where("id = ?", adj.ProductID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		res := tx.Model(&model.Product{}).
			Where("id = ?", adj.ProductID).
			UpdateColumn("stock_quantity", newStock)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		adj.Delta = newStock - p.StockQuantity
		return tx.Create(&adj).Error
	})
}

func (r *WarehouseGormRepository) ListAdjustments(ctx context.Context, productID string, limit int) ([]model.StockAdjustment, error) {
	var adjustments []model.StockAdjustment
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Limit(limit).
		Find(&adjustments).Error
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}
