package handler

import (
	"net/http"

	"okean/internal/middleware"
	"okean/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler exposes the visitor's session cart. No login required;
// the cart is tied to the session cookie.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.POST("/cart/items", h.addItem)
	e.PATCH("/cart/items/:product_id", h.updateItem)
	e.DELETE("/cart/items/:product_id", h.removeItem)
	e.DELETE("/cart", h.clear)
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) getCart(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	return c.JSON(http.StatusOK, h.uc.View(sess))
}

func (h *CartHandler) addItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), sess, req.ProductID, middleware.LocaleFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SetQuantity(sess, c.Param("product_id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	out, err := h.uc.RemoveItem(sess, c.Param("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	return c.JSON(http.StatusOK, h.uc.Clear(sess))
}
