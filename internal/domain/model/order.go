package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// UserID is nil for guest checkout.
type Order struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(30);not null;uniqueIndex" json:"order_number"`
	UserID      *string     `gorm:"type:uuid;index" json:"user_id"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount float64     `gorm:"type:numeric(12,2);not null" json:"total_amount"`

	CustomerName  string  `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string  `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone *string `gorm:"type:varchar(30)" json:"customer_phone"`

	ShippingAddress *string `gorm:"type:text" json:"shipping_address"`
	Notes           *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
