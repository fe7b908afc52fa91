package usecase

import (
	"context"
	"errors"
	"testing"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogUC(categories *CategoryRepoMock, products *ProductRepoMock, settings *SettingRepoMock) *CatalogUsecase {
	if categories == nil {
		categories = new(CategoryRepoMock)
	}
	if products == nil {
		products = new(ProductRepoMock)
	}
	if settings == nil {
		settings = new(SettingRepoMock)
	}
	return NewCatalogUsecase(categories, products, settings)
}

func TestCatalogUsecase_Home(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	settings := new(SettingRepoMock)
	uc := newCatalogUC(categories, products, settings)

	products.On("ListPublic", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Featured && q.Limit == 8
	})).Return([]model.Product{{ID: "p1"}}, int64(1), nil)
	categories.On("ListActive", mock.Anything).Return([]model.Category{{ID: "c1"}}, nil)
	settings.On("GetAll", mock.Anything).Return([]model.Setting{
		{Key: repo.SettingStoreName, Value: "Океан"},
		{Key: repo.SettingLowStockThreshold, Value: "10"},
	}, nil)

	out, err := uc.Home(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out.FeaturedProducts, 1)
	assert.Len(t, out.Categories, 1)
	assert.Equal(t, "Океан", out.Store[repo.SettingStoreName])

	products.AssertExpectations(t)
}

func TestCatalogUsecase_Home_SettingsFailureDegrades(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	settings := new(SettingRepoMock)
	uc := newCatalogUC(categories, products, settings)

	products.On("ListPublic", mock.Anything, mock.Anything).Return([]model.Product{{ID: "p1"}}, int64(1), nil)
	categories.On("ListActive", mock.Anything).Return([]model.Category{{ID: "c1"}}, nil)
	settings.On("GetAll", mock.Anything).Return([]model.Setting(nil), errors.New("connection reset"))

	out, err := uc.Home(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out.FeaturedProducts, 1)
	assert.Empty(t, out.Store)
}

func TestCatalogUsecase_StoreInfo_HidesInternalKeys(t *testing.T) {
	settings := new(SettingRepoMock)
	uc := newCatalogUC(nil, nil, settings)

	settings.On("GetAll", mock.Anything).Return([]model.Setting{
		{Key: repo.SettingStorePhone, Value: "+992 44 600 00 00"},
		{Key: repo.SettingLowStockThreshold, Value: "10"},
	}, nil)

	out, err := uc.StoreInfo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "+992 44 600 00 00", out[repo.SettingStorePhone])
	_, exposed := out[repo.SettingLowStockThreshold]
	assert.False(t, exposed)
}

func TestCatalogUsecase_GetCategoryBySlug_InactiveHidden(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := newCatalogUC(categories, nil, nil)

	categories.On("FindBySlug", mock.Anything, "paints").Return(model.Category{ID: "c1", Slug: "paints", IsActive: false}, nil)

	_, err := uc.GetCategoryBySlug(context.Background(), "paints", 1, 20)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCatalogUsecase_GetCategoryBySlug_ScopesProducts(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	uc := newCatalogUC(categories, products, nil)

	categories.On("FindBySlug", mock.Anything, "paints").Return(model.Category{ID: "c1", Slug: "paints", IsActive: true}, nil)
	products.On("ListPublic", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.CategoryID != nil && *q.CategoryID == "c1"
	})).Return([]model.Product{{ID: "p1"}}, int64(1), nil)

	out, err := uc.GetCategoryBySlug(context.Background(), "paints", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, "c1", out.Category.ID)
	assert.Len(t, out.Products.Items, 1)
}

func TestCatalogUsecase_ListPublicProducts_InvalidSort(t *testing.T) {
	uc := newCatalogUC(nil, nil, nil)

	_, err := uc.ListPublicProducts(context.Background(), ListProductsInput{Page: 1, Limit: 20, Sort: "cheapest"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCatalogUsecase_ListPublicProducts_PriceRangeInverted(t *testing.T) {
	uc := newCatalogUC(nil, nil, nil)

	lo, hi := 500.0, 100.0
	_, err := uc.ListPublicProducts(context.Background(), ListProductsInput{Page: 1, Limit: 20, MinPrice: &lo, MaxPrice: &hi})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCatalogUsecase_GetProductDetail_InactiveHidden(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newCatalogUC(nil, products, nil)

	products.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", IsActive: false}, nil)

	_, err := uc.GetProductDetail(context.Background(), "p1")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}
