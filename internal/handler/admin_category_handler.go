package handler

import (
	"net/http"

	"okean/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminCategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewAdminCategoryHandler(uc *usecase.CategoryUsecase) *AdminCategoryHandler {
	return &AdminCategoryHandler{uc: uc}
}

func (h *AdminCategoryHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/categories", h.list)
	admin.POST("/categories", h.create)
	admin.PUT("/categories/:id", h.update)
	admin.DELETE("/categories/:id", h.delete)
}

type categoryRequest struct {
	Slug          string `json:"slug"`
	NameRU        string `json:"name_ru"`
	NameTJ        string `json:"name_tj"`
	NameEN        string `json:"name_en"`
	DescriptionRU string `json:"description_ru"`
	DescriptionTJ string `json:"description_tj"`
	DescriptionEN string `json:"description_en"`
	ImageURL      string `json:"image_url"`
	SortOrder     int    `json:"sort_order"`
	IsActive      bool   `json:"is_active"`
}

func (r categoryRequest) toInput() usecase.AdminCategoryInput {
	return usecase.AdminCategoryInput{
		Slug:          r.Slug,
		NameRU:        r.NameRU,
		NameTJ:        r.NameTJ,
		NameEN:        r.NameEN,
		DescriptionRU: r.DescriptionRU,
		DescriptionTJ: r.DescriptionTJ,
		DescriptionEN: r.DescriptionEN,
		ImageURL:      r.ImageURL,
		SortOrder:     r.SortOrder,
		IsActive:      r.IsActive,
	}
}

func (h *AdminCategoryHandler) list(c echo.Context) error {
	out, err := h.uc.AdminListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminCategoryHandler) create(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminCreateCategory(c.Request().Context(), adminID, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminCategoryHandler) update(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AdminUpdateCategory(c.Request().Context(), adminID, c.Param("id"), req.toInput()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "category updated"})
}

func (h *AdminCategoryHandler) delete(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.AdminDeleteCategory(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "category deleted"})
}
