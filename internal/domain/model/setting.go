package model

import "time"

// Setting is one row of the store-wide key/value configuration
// edited on the admin settings page (store name, contact details,
// default language, low stock threshold).
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
