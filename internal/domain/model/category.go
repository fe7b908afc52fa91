package model

import "time"

// Category is a product category with per-locale names and descriptions.
type Category struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Slug   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	NameRU string `gorm:"type:varchar(255);not null" json:"name_ru"`
	NameTJ string `gorm:"type:varchar(255);not null" json:"name_tj"`
	NameEN string `gorm:"type:varchar(255);not null" json:"name_en"`

	DescriptionRU *string `gorm:"type:text" json:"description_ru"`
	DescriptionTJ *string `gorm:"type:text" json:"description_tj"`
	DescriptionEN *string `gorm:"type:text" json:"description_en"`

	ImageURL  *string `gorm:"type:varchar(500)" json:"image_url"`
	SortOrder int     `gorm:"not null;default:0;index" json:"sort_order"`
	IsActive  bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
