package usecase

import (
	"context"
	"net/http"
	"strconv"

	repo "okean/internal/repository"

	"okean/internal/i18n"
)

// editableSettings is the closed set of keys the settings page may write.
var editableSettings = map[string]bool{
	repo.SettingStoreName:         true,
	repo.SettingStoreEmail:        true,
	repo.SettingStorePhone:        true,
	repo.SettingStoreAddress:      true,
	repo.SettingWorkingHours:      true,
	repo.SettingDefaultLanguage:   true,
	repo.SettingLowStockThreshold: true,
}

type SettingsUsecase struct {
	settings repo.SettingRepository
}

func NewSettingsUsecase(settings repo.SettingRepository) *SettingsUsecase {
	return &SettingsUsecase{settings: settings}
}

func (u *SettingsUsecase) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := u.settings.GetAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// Update writes the supplied keys. Unknown keys and malformed values are
// rejected as a whole; nothing is written on error.
func (u *SettingsUsecase) Update(ctx context.Context, adminUserID string, values map[string]string) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(values) == 0 {
		return NewHTTPError(http.StatusBadRequest, "no settings given")
	}

	for k, v := range values {
		if !editableSettings[k] {
			return NewHTTPError(http.StatusBadRequest, "unknown setting: "+k)
		}
		switch k {
		case repo.SettingDefaultLanguage:
			if _, ok := i18n.ParseLocale(v); !ok {
				return NewHTTPError(http.StatusBadRequest, "invalid default_language")
			}
		case repo.SettingLowStockThreshold:
			if n, err := strconv.ParseInt(v, 10, 64); err != nil || n < 0 {
				return NewHTTPError(http.StatusBadRequest, "invalid low_stock_threshold")
			}
		}
	}

	for k, v := range values {
		if err := u.settings.Upsert(ctx, k, v); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}
