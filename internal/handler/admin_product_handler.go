package handler

import (
	"net/http"

	"okean/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminProductHandler covers product CRUD and the warehouse screen.
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

func (h *AdminProductHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/products", h.list)
	admin.GET("/products/:id", h.get)
	admin.POST("/products", h.create)
	admin.PUT("/products/:id", h.update)
	admin.DELETE("/products/:id", h.delete)

	admin.GET("/warehouse", h.warehouseList)
	admin.PUT("/warehouse/:product_id", h.warehouseSetStock)
	admin.GET("/warehouse/:product_id/adjustments", h.warehouseAdjustments)
}

type productRequest struct {
	SKU           string   `json:"sku"`
	CategoryID    string   `json:"category_id"`
	NameRU        string   `json:"name_ru"`
	NameTJ        string   `json:"name_tj"`
	NameEN        string   `json:"name_en"`
	DescriptionRU string   `json:"description_ru"`
	DescriptionTJ string   `json:"description_tj"`
	DescriptionEN string   `json:"description_en"`
	Price         float64  `json:"price"`
	SalePrice     *float64 `json:"sale_price"`
	StockQuantity int64    `json:"stock_quantity"`
	Unit          string   `json:"unit"`
	ImageURL      string   `json:"image_url"`
	IsActive      bool     `json:"is_active"`
	IsFeatured    bool     `json:"is_featured"`
}

func (r productRequest) toInput() usecase.AdminProductInput {
	return usecase.AdminProductInput{
		SKU:           r.SKU,
		CategoryID:    r.CategoryID,
		NameRU:        r.NameRU,
		NameTJ:        r.NameTJ,
		NameEN:        r.NameEN,
		DescriptionRU: r.DescriptionRU,
		DescriptionTJ: r.DescriptionTJ,
		DescriptionEN: r.DescriptionEN,
		Price:         r.Price,
		SalePrice:     r.SalePrice,
		StockQuantity: r.StockQuantity,
		Unit:          r.Unit,
		ImageURL:      r.ImageURL,
		IsActive:      r.IsActive,
		IsFeatured:    r.IsFeatured,
	}
}

type stockUpdateRequest struct {
	Stock  int64  `json:"stock"`
	Reason string `json:"reason"`
}

func (h *AdminProductHandler) list(c echo.Context) error {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
	}
	limit, err := intQuery(c, "limit", 20)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
	}

	in := usecase.ListProductsInput{
		Page:  page,
		Limit: limit,
		Q:     c.QueryParam("q"),
		Sort:  c.QueryParam("sort"),
	}
	if v := c.QueryParam("category_id"); v != "" {
		in.CategoryID = &v
	}

	out, err := h.uc.AdminListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) get(c echo.Context) error {
	out, err := h.uc.AdminGetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminCreateProduct(c.Request().Context(), adminID, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AdminUpdateProduct(c.Request().Context(), adminID, c.Param("id"), req.toInput()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "product updated"})
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

func (h *AdminProductHandler) warehouseList(c echo.Context) error {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
	}
	limit, err := intQuery(c, "limit", 20)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
	}

	out, err := h.uc.WarehouseList(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) warehouseSetStock(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req stockUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.WarehouseSetStock(c.Request().Context(), adminID, c.Param("product_id"), req.Stock, req.Reason); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "stock updated"})
}

func (h *AdminProductHandler) warehouseAdjustments(c echo.Context) error {
	limit, err := intQuery(c, "limit", 20)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
	}

	out, err := h.uc.WarehouseAdjustments(c.Request().Context(), c.Param("product_id"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
