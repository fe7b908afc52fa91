package usecase

import (
	"context"
	"testing"
	"time"

	"okean/internal/domain/model"
	"okean/internal/i18n"
	repo "okean/internal/repository"
	"okean/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSession() *session.Session {
	return session.NewManager(time.Hour).GetOrCreate("")
}

func sampleProduct() model.Product {
	sale := 75.0
	img := "https://cdn.example.com/cement.jpg"
	return model.Product{
		ID:            "p1",
		NameRU:        "Цемент",
		NameTJ:        "Семент",
		NameEN:        "Cement",
		Price:         85,
		SalePrice:     &sale,
		StockQuantity: 20,
		ImageURL:      &img,
		IsActive:      true,
	}
}

func TestCartUsecase_AddItem_SnapshotsLocaleNameAndSalePrice(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)
	sess := newTestSession()

	products.On("FindByID", mock.Anything, "p1").Return(sampleProduct(), nil)

	out, err := uc.AddItem(context.Background(), sess, "p1", i18n.LocaleEN)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, "Cement", out.Items[0].Name)
	assert.Equal(t, 75.0, out.Items[0].UnitPrice)
	assert.Equal(t, int64(1), out.TotalItems)
}

func TestCartUsecase_AddItem_TwiceIncrements(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)
	sess := newTestSession()

	products.On("FindByID", mock.Anything, "p1").Return(sampleProduct(), nil)

	_, err := uc.AddItem(context.Background(), sess, "p1", i18n.LocaleRU)
	assert.NoError(t, err)
	out, err := uc.AddItem(context.Background(), sess, "p1", i18n.LocaleRU)
	assert.NoError(t, err)

	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.InDelta(t, 150.0, out.TotalPrice, 1e-9)
}

func TestCartUsecase_AddItem_UnknownProduct(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)

	products.On("FindByID", mock.Anything, "ghost").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), newTestSession(), "ghost", i18n.LocaleRU)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCartUsecase_AddItem_InactiveProduct(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)

	p := sampleProduct()
	p.IsActive = false
	products.On("FindByID", mock.Anything, "p1").Return(p, nil)

	_, err := uc.AddItem(context.Background(), newTestSession(), "p1", i18n.LocaleRU)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCartUsecase_AddItem_OutOfStock(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)

	p := sampleProduct()
	p.StockQuantity = 0
	products.On("FindByID", mock.Anything, "p1").Return(p, nil)

	_, err := uc.AddItem(context.Background(), newTestSession(), "p1", i18n.LocaleRU)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_SetQuantity_ZeroRemoves(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)
	sess := newTestSession()

	products.On("FindByID", mock.Anything, "p1").Return(sampleProduct(), nil)
	_, err := uc.AddItem(context.Background(), sess, "p1", i18n.LocaleRU)
	assert.NoError(t, err)

	out, err := uc.SetQuantity(sess, "p1", 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, int64(0), out.TotalItems)
}

func TestCartUsecase_Clear(t *testing.T) {
	products := new(ProductRepoMock)
	uc := NewCartUsecase(products)
	sess := newTestSession()

	products.On("FindByID", mock.Anything, "p1").Return(sampleProduct(), nil)
	_, err := uc.AddItem(context.Background(), sess, "p1", i18n.LocaleRU)
	assert.NoError(t, err)

	out := uc.Clear(sess)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, 0.0, out.TotalPrice)
}
