package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"column:password_hash;not null" json:"-"`
	FullName     *string `gorm:"type:varchar(255)" json:"full_name"`
	Phone        *string `gorm:"type:varchar(30)" json:"phone"`
	Role         Role    `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`

	// TokenVersion invalidates all outstanding access tokens when bumped.
	TokenVersion int  `gorm:"not null;default:0" json:"token_version"`
	IsActive     bool `gorm:"not null;default:true" json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
