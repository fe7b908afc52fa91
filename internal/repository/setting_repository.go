package repository

import (
	"context"

	"okean/internal/domain/model"
)

// Fixed setting keys used by the storefront and the admin settings page.
const (
	SettingStoreName         = "store_name"
	SettingStoreEmail        = "store_email"
	SettingStorePhone        = "store_phone"
	SettingStoreAddress      = "store_address"
	SettingWorkingHours      = "working_hours"
	SettingDefaultLanguage   = "default_language"
	SettingLowStockThreshold = "low_stock_threshold"
)

type SettingRepository interface {
	GetAll(ctx context.Context) ([]model.Setting, error)
	Get(ctx context.Context, key string) (model.Setting, error)
	// Upsert writes one key, creating it when absent.
	Upsert(ctx context.Context, key string, value string) error
}
