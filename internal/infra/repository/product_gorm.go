package repository

import (
	"context"
	"errors"
	"strings"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// applyListQuery adds the shared search/filter clauses.
func applyListQuery(tx *gorm.DB, q repo.ProductListQuery) *gorm.DB {
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name_ru ILIKE ? OR name_tj ILIKE ? OR name_en ILIKE ? OR sku ILIKE ?", like, like, like, like)
	}
	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.Featured {
		tx = tx.Where("is_featured = ?", true)
	}
	return tx
}

func applySort(tx *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "price_asc":
		return tx.Order("price asc").Order("id asc")
	case "price_desc":
		return tx.Order("price desc").Order("id desc")
	case "name":
		return tx.Order("name_ru asc").Order("id asc")
	default:
		return tx.Order("created_at desc").Order("id desc")
	}
}

func (r *ProductGormRepository) list(ctx context.Context, q repo.ProductListQuery, publicOnly bool) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})
	if publicOnly {
		tx = tx.Where("is_active = ?", true)
	}
	tx = applyListQuery(tx, q)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = applySort(tx, q.Sort)
	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	return r.list(ctx, q, true)
}

func (r *ProductGormRepository) ListAdmin(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	return r.list(ctx, q, false)
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"sku":            p.SKU,
		"category_id":    p.CategoryID,
		"name_ru":        p.NameRU,
		"name_tj":        p.NameTJ,
		"name_en":        p.NameEN,
		"description_ru": p.DescriptionRU,
		"description_tj": p.DescriptionTJ,
		"description_en": p.DescriptionEN,
		"price":          p.Price,
		"sale_price":     p.SalePrice,
		"stock_quantity": p.StockQuantity,
		"unit":           p.Unit,
		"image_url":      p.ImageURL,
		"is_active":      p.IsActive,
		"is_featured":    p.IsFeatured,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// DecreaseStockIfEnough relies on the WHERE guard so two concurrent
// checkouts cannot drive stock negative.
func (r *ProductGormRepository) DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ProductGormRepository) RestoreStock(ctx context.Context, productID string, qty int64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
