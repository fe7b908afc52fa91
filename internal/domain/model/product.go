package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID         string  `gorm:"type:uuid;primaryKey" json:"id"`
	SKU        *string `gorm:"type:varchar(100);uniqueIndex" json:"sku"`
	CategoryID *string `gorm:"type:uuid;index" json:"category_id"`

	NameRU string `gorm:"type:varchar(255);not null" json:"name_ru"`
	NameTJ string `gorm:"type:varchar(255);not null" json:"name_tj"`
	NameEN string `gorm:"type:varchar(255);not null" json:"name_en"`

	DescriptionRU *string `gorm:"type:text" json:"description_ru"`
	DescriptionTJ *string `gorm:"type:text" json:"description_tj"`
	DescriptionEN *string `gorm:"type:text" json:"description_en"`

	// Price is in somoni. SalePrice, when set, is the effective price.
	Price     float64  `gorm:"type:numeric(12,2);not null" json:"price"`
	SalePrice *float64 `gorm:"type:numeric(12,2)" json:"sale_price"`

	StockQuantity int64  `gorm:"not null;default:0" json:"stock_quantity"`
	Unit          string `gorm:"type:varchar(50);not null;default:'шт'" json:"unit"`

	ImageURL   *string `gorm:"type:varchar(500)" json:"image_url"`
	IsActive   bool    `gorm:"not null;default:false" json:"is_active"`
	IsFeatured bool    `gorm:"not null;default:false" json:"is_featured"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EffectivePrice returns the sale price when present, the regular price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// Name returns the product name for the given locale code (ru/tj/en).
func (p Product) Name(locale string) string {
	switch locale {
	case "tj":
		return p.NameTJ
	case "en":
		return p.NameEN
	default:
		return p.NameRU
	}
}
