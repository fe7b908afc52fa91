package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"okean/internal/domain/model"
	repo "okean/internal/repository"

	"github.com/google/uuid"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, productRepo repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, productRepo: productRepo}
}

type AdminCategoryInput struct {
	Slug          string
	NameRU        string
	NameTJ        string
	NameEN        string
	DescriptionRU string
	DescriptionTJ string
	DescriptionEN string
	ImageURL      string
	SortOrder     int
	IsActive      bool
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func validateCategoryInput(in AdminCategoryInput) error {
	if !slugRe.MatchString(in.Slug) {
		return NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	if strings.TrimSpace(in.NameRU) == "" || strings.TrimSpace(in.NameTJ) == "" || strings.TrimSpace(in.NameEN) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required in all locales")
	}
	return nil
}

func applyCategoryInput(c *model.Category, in AdminCategoryInput) {
	c.Slug = in.Slug
	c.NameRU = strings.TrimSpace(in.NameRU)
	c.NameTJ = strings.TrimSpace(in.NameTJ)
	c.NameEN = strings.TrimSpace(in.NameEN)
	c.DescriptionRU = optional(in.DescriptionRU)
	c.DescriptionTJ = optional(in.DescriptionTJ)
	c.DescriptionEN = optional(in.DescriptionEN)
	c.ImageURL = optional(in.ImageURL)
	c.SortOrder = in.SortOrder
	c.IsActive = in.IsActive
}

func (u *CategoryUsecase) AdminListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}

func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, adminUserID string, in AdminCategoryInput) (model.Category, error) {
	if adminUserID == "" {
		return model.Category{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateCategoryInput(in); err != nil {
		return model.Category{}, err
	}

	if _, err := u.categoryRepo.FindBySlug(ctx, in.Slug); err == nil {
		return model.Category{}, NewHTTPError(http.StatusConflict, "slug already used")
	} else if err != repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c := model.Category{ID: uuid.NewString()}
	applyCategoryInput(&c, in)

	created, err := u.categoryRepo.Create(ctx, c)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, adminUserID string, categoryID string, in AdminCategoryInput) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	if err := validateCategoryInput(in); err != nil {
		return err
	}

	// slug must stay unique across the other rows
	if existing, err := u.categoryRepo.FindBySlug(ctx, in.Slug); err == nil && existing.ID != categoryID {
		return NewHTTPError(http.StatusConflict, "slug already used")
	} else if err != nil && err != repo.ErrNotFound {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c := model.Category{ID: categoryID}
	applyCategoryInput(&c, in)

	err := u.categoryRepo.Update(ctx, c)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDeleteCategory refuses to delete a category that still has
// products; they have to be moved or removed first.
func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, adminUserID string, categoryID string) error {
	if adminUserID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	_, total, err := u.productRepo.ListAdmin(ctx, repo.ProductListQuery{
		Page:       1,
		Limit:      1,
		CategoryID: &categoryID,
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if total > 0 {
		return NewHTTPError(http.StatusConflict, "category has products")
	}

	err = u.categoryRepo.Delete(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
