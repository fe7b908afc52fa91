package usecase

import (
	"context"
	"net/http"
	"strings"

	"okean/internal/domain/model"
	repo "okean/internal/repository"
)

type CatalogUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
	settingRepo  repo.SettingRepository
}

func NewCatalogUsecase(
	categoryRepo repo.CategoryRepository,
	productRepo repo.ProductRepository,
	settingRepo repo.SettingRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		settingRepo:  settingRepo,
	}
}

type ListProductsInput struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// HomeOutput is the landing page payload: featured products plus the
// active category list and the store contact block.
type HomeOutput struct {
	FeaturedProducts []model.Product   `json:"featured_products"`
	Categories       []model.Category  `json:"categories"`
	Store            map[string]string `json:"store"`
}

func (u *CatalogUsecase) Home(ctx context.Context) (HomeOutput, error) {
	featured, _, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:     1,
		Limit:    8,
		Featured: true,
	})
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cats, err := u.categoryRepo.ListActive(ctx)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// the contact block is decoration on the landing page; render the
	// feed without it rather than failing the whole request
	store, err := u.StoreInfo(ctx)
	if err != nil {
		store = map[string]string{}
	}

	return HomeOutput{
		FeaturedProducts: featured,
		Categories:       cats,
		Store:            store,
	}, nil
}

// StoreInfo returns the public store contact settings. Internal keys
// such as the low-stock threshold never leave the admin surface.
func (u *CatalogUsecase) StoreInfo(ctx context.Context) (map[string]string, error) {
	settings, err := u.settingRepo.GetAll(ctx)
	if err != nil {
		return map[string]string{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	store := map[string]string{}
	for _, s := range settings {
		switch s.Key {
		case repo.SettingStoreName, repo.SettingStoreEmail,
			repo.SettingStorePhone, repo.SettingStoreAddress,
			repo.SettingWorkingHours, repo.SettingDefaultLanguage:
			store[s.Key] = s.Value
		}
	}
	return store, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}

// CategoryDetailOutput is one category page: the category row plus its
// paginated products.
type CategoryDetailOutput struct {
	Category model.Category    `json:"category"`
	Products ProductListOutput `json:"products"`
}

func (u *CatalogUsecase) GetCategoryBySlug(ctx context.Context, slug string, page int, limit int) (CategoryDetailOutput, error) {
	if strings.TrimSpace(slug) == "" {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	if page < 1 || limit < 1 || limit > 100 {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	cat, err := u.categoryRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !cat.IsActive {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:       page,
		Limit:      limit,
		CategoryID: &cat.ID,
	})
	if err != nil {
		return CategoryDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CategoryDetailOutput{
		Category: cat,
		Products: ProductListOutput{Items: items, Total: total, Page: page, Limit: limit},
	}, nil
}

func (u *CatalogUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc", "name":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		CategoryID: in.CategoryID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		Sort:       in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
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

	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}
