package usecase

import (
	"context"
	"testing"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUC(products *ProductRepoMock, warehouse *WarehouseRepoMock, categories *CategoryRepoMock, audit *AuditRepoMock) *ProductUsecase {
	if products == nil {
		products = new(ProductRepoMock)
	}
	if warehouse == nil {
		warehouse = new(WarehouseRepoMock)
	}
	if categories == nil {
		categories = new(CategoryRepoMock)
	}
	if audit == nil {
		audit = new(AuditRepoMock)
	}
	return NewProductUsecase(products, warehouse, categories, audit)
}

func validProductInput() AdminProductInput {
	return AdminProductInput{
		NameRU:        "Цемент",
		NameTJ:        "Семент",
		NameEN:        "Cement",
		Price:         85,
		StockQuantity: 10,
		IsActive:      true,
	}
}

func TestProductUsecase_AdminCreate_Unauthorized(t *testing.T) {
	uc := newProductUC(nil, nil, nil, nil)

	_, err := uc.AdminCreateProduct(context.Background(), "", validProductInput())
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
}

func TestProductUsecase_AdminCreate_RequiresAllLocaleNames(t *testing.T) {
	uc := newProductUC(nil, nil, nil, nil)

	in := validProductInput()
	in.NameTJ = "  "
	_, err := uc.AdminCreateProduct(context.Background(), "admin1", in)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_AdminCreate_SalePriceAbovePrice(t *testing.T) {
	uc := newProductUC(nil, nil, nil, nil)

	in := validProductInput()
	sale := 90.0
	in.SalePrice = &sale
	_, err := uc.AdminCreateProduct(context.Background(), "admin1", in)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_AdminCreate_UnknownCategory(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := newProductUC(nil, nil, categories, nil)

	categories.On("FindByID", mock.Anything, "ghost").Return(model.Category{}, repo.ErrNotFound)

	in := validProductInput()
	in.CategoryID = "ghost"
	_, err := uc.AdminCreateProduct(context.Background(), "admin1", in)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_AdminCreate_Success_DefaultsUnit(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUC(products, nil, nil, nil)

	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID != "" && p.NameRU == "Цемент" && p.Unit == "шт" && p.SKU == nil
	})).Return(model.Product{ID: "new-id"}, nil)

	created, err := uc.AdminCreateProduct(context.Background(), "admin1", validProductInput())
	assert.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)

	products.AssertExpectations(t)
}

func TestProductUsecase_AdminUpdate_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := newProductUC(products, nil, nil, nil)

	products.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.AdminUpdateProduct(context.Background(), "admin1", "missing", validProductInput())
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestProductUsecase_WarehouseSetStock_RecordsAdjustmentAndAudit(t *testing.T) {
	products := new(ProductRepoMock)
	warehouse := new(WarehouseRepoMock)
	audit := new(AuditRepoMock)
	uc := newProductUC(products, warehouse, nil, audit)

	products.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", StockQuantity: 5}, nil)
	warehouse.On("SetStockWithAdjustment", mock.Anything, mock.MatchedBy(func(adj model.StockAdjustment) bool {
		return adj.ProductID == "p1" && adj.AdminUserID == "admin1" && adj.Reason == "delivery"
	}), int64(25)).Return(nil)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateStock &&
			l.ResourceID == "p1" &&
			l.BeforeJSON == `{"stock":5}` &&
			l.AfterJSON == `{"stock":25}`
	})).Return(nil)

	err := uc.WarehouseSetStock(context.Background(), "admin1", "p1", 25, " delivery ")
	assert.NoError(t, err)

	warehouse.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestProductUsecase_WarehouseSetStock_ReasonRequired(t *testing.T) {
	uc := newProductUC(nil, nil, nil, nil)

	err := uc.WarehouseSetStock(context.Background(), "admin1", "p1", 25, "  ")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_WarehouseSetStock_NegativeStock(t *testing.T) {
	uc := newProductUC(nil, nil, nil, nil)

	err := uc.WarehouseSetStock(context.Background(), "admin1", "p1", -1, "oops")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProductUsecase_WarehouseList(t *testing.T) {
	warehouse := new(WarehouseRepoMock)
	uc := newProductUC(nil, warehouse, nil, nil)

	warehouse.On("ListByStock", mock.Anything, 1, 20).Return([]model.Product{{ID: "p1"}}, int64(1), nil)

	out, err := uc.WarehouseList(context.Background(), 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
}
