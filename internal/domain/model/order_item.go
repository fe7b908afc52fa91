package model

import "time"

// OrderItem keeps name and price snapshots taken at checkout time.
type OrderItem struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     string    `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   string    `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	TotalPrice  float64   `gorm:"type:numeric(12,2);not null" json:"total_price"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
