package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/google/uuid"
)

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	warehouseRepo repo.WarehouseRepository
	categoryRepo  repo.CategoryRepository
	auditRepo     repo.AuditLogRepository
}

func NewProductUsecase(
	productRepo repo.ProductRepository,
	warehouseRepo repo.WarehouseRepository,
	categoryRepo repo.CategoryRepository,
	auditRepo repo.AuditLogRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		categoryRepo:  categoryRepo,
		auditRepo:     auditRepo,
	}
}

// AdminProductInput carries all editable product fields. Names are
// required in all three locales so every storefront language always has
// something to show.
type AdminProductInput struct {
	SKU           string
	CategoryID    string
	NameRU        string
	NameTJ        string
	NameEN        string
	DescriptionRU string
	DescriptionTJ string
	DescriptionEN string
	Price         float64
	SalePrice     *float64
	StockQuantity int64
	Unit          string
	ImageURL      string
	IsActive      bool
	IsFeatured    bool
}

func (u *ProductUsecase) validateInput(ctx context.Context, in AdminProductInput) error {
	if strings.TrimSpace(in.NameRU) == "" || strings.TrimSpace(in.NameTJ) == "" || strings.TrimSpace(in.NameEN) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required in all locales")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.SalePrice != nil && (*in.SalePrice < 0 || *in.SalePrice > in.Price) {
		return NewHTTPError(http.StatusBadRequest, "sale_price must be between 0 and price")
	}
	if in.StockQuantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.CategoryID != "" {
		if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "unknown category")
		} else if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

func applyInput(p *model.Product, in AdminProductInput) {
	p.NameRU = strings.TrimSpace(in.NameRU)
	p.NameTJ = strings.TrimSpace(in.NameTJ)
	p.NameEN = strings.TrimSpace(in.NameEN)
	p.Price = in.Price
	p.SalePrice = in.SalePrice
	p.StockQuantity = in.StockQuantity
	p.IsActive = in.IsActive
	p.IsFeatured = in.IsFeatured

	p.SKU = optional(in.SKU)
	p.CategoryID = optional(in.CategoryID)
	p.DescriptionRU = optional(in.DescriptionRU)
	p.DescriptionTJ = optional(in.DescriptionTJ)
	p.DescriptionEN = optional(in.DescriptionEN)
	p.ImageURL = optional(in.ImageURL)

	p.Unit = strings.TrimSpace(in.Unit)
	if p.Unit == "" {
		p.Unit = "шт"
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (u *ProductUsecase) AdminListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 || in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	items, total, err := u.productRepo.ListAdmin(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		CategoryID: in.CategoryID,
		Sort:       in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *ProductUsecase) AdminGetProduct(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, adminUserID string, in AdminProductInput) (model.Product, error) {
	if adminUserID == "" {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validateInput(ctx, in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{ID: uuid.NewString()}
	applyInput(&p, in)

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, adminUserID string, productID string, in AdminProductInput) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateInput(ctx, in); err != nil {
		return err
	}

	p := model.Product{ID: productID}
	applyInput(&p, in)

	err := u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, adminUserID string, productID string) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// WarehouseListOutput is the stock screen: products ordered by stock
// ascending so shortages surface first.
type WarehouseListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) WarehouseList(ctx context.Context, page int, limit int) (WarehouseListOutput, error) {
	if page < 1 || limit < 1 || limit > 100 {
		return WarehouseListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	items, total, err := u.warehouseRepo.ListByStock(ctx, page, limit)
	if err != nil {
		return WarehouseListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return WarehouseListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// WarehouseSetStock overwrites a product's stock, records the signed
// adjustment with its reason, and writes an audit entry with the
// before/after quantities.
func (u *ProductUsecase) WarehouseSetStock(ctx context.Context, adminUserID string, productID string, newStock int64, reason string) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if newStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return NewHTTPError(http.StatusBadRequest, "reason required")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	adj := model.StockAdjustment{
		ID:          uuid.NewString(),
		ProductID:   productID,
		AdminUserID: adminUserID,
		Reason:      reason,
	}
	if err := u.warehouseRepo.SetStockWithAdjustment(ctx, adj, newStock); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ID:           uuid.NewString(),
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateStock,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   fmt.Sprintf(`{"stock":%d}`, p.StockQuantity),
		AfterJSON:    fmt.Sprintf(`{"stock":%d}`, newStock),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func (u *ProductUsecase) WarehouseAdjustments(ctx context.Context, productID string, limit int) ([]model.StockAdjustment, error) {
	if productID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	adjs, err := u.warehouseRepo.ListAdjustments(ctx, productID, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return adjs, nil
}
