package usecase

import (
	"context"
	"testing"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettingsUsecase_GetAll(t *testing.T) {
	settings := new(SettingRepoMock)
	uc := NewSettingsUsecase(settings)

	settings.On("GetAll", mock.Anything).Return([]model.Setting{
		{Key: repo.SettingStoreName, Value: "Океан"},
		{Key: repo.SettingDefaultLanguage, Value: "ru"},
	}, nil)

	out, err := uc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Океан", out[repo.SettingStoreName])
	assert.Equal(t, "ru", out[repo.SettingDefaultLanguage])
}

func TestSettingsUsecase_Update_WritesEachKey(t *testing.T) {
	settings := new(SettingRepoMock)
	uc := NewSettingsUsecase(settings)

	settings.On("Upsert", mock.Anything, repo.SettingStoreName, "Океан Строй").Return(nil)
	settings.On("Upsert", mock.Anything, repo.SettingLowStockThreshold, "15").Return(nil)

	err := uc.Update(context.Background(), "admin1", map[string]string{
		repo.SettingStoreName:         "Океан Строй",
		repo.SettingLowStockThreshold: "15",
	})
	assert.NoError(t, err)

	settings.AssertExpectations(t)
}

func TestSettingsUsecase_Update_UnknownKeyRejectsAll(t *testing.T) {
	settings := new(SettingRepoMock)
	uc := NewSettingsUsecase(settings)

	err := uc.Update(context.Background(), "admin1", map[string]string{
		repo.SettingStoreName: "Океан",
		"favorite_color":      "blue",
	})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)

	settings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsUsecase_Update_InvalidLanguage(t *testing.T) {
	uc := NewSettingsUsecase(new(SettingRepoMock))

	err := uc.Update(context.Background(), "admin1", map[string]string{
		repo.SettingDefaultLanguage: "fr",
	})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestSettingsUsecase_Update_InvalidThreshold(t *testing.T) {
	uc := NewSettingsUsecase(new(SettingRepoMock))

	err := uc.Update(context.Background(), "admin1", map[string]string{
		repo.SettingLowStockThreshold: "-3",
	})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestSettingsUsecase_Update_EmptyPayload(t *testing.T) {
	uc := NewSettingsUsecase(new(SettingRepoMock))

	err := uc.Update(context.Background(), "admin1", map[string]string{})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}
