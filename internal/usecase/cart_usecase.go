package usecase

import (
	"context"
	"net/http"

	"okean/internal/cart"
	"okean/internal/i18n"
	repo "okean/internal/repository"
	"okean/internal/session"
)

// CartUsecase binds the in-memory visitor cart to the product catalog:
// items enter the cart with a name and price snapshot taken at add time,
// in the visitor's locale.
type CartUsecase struct {
	productRepo repo.ProductRepository
}

func NewCartUsecase(productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{productRepo: productRepo}
}

type CartResponse struct {
	Items      []cart.Line `json:"items"`
	TotalItems int64       `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func snapshot(c *cart.Cart) CartResponse {
	return CartResponse{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func (u *CartUsecase) View(sess *session.Session) CartResponse {
	var out CartResponse
	sess.Do(func(c *cart.Cart) {
		out = snapshot(c)
	})
	return out
}

// AddItem looks the product up, takes a locale-aware name snapshot and
// the effective price, and adds one unit to the visitor's cart.
func (u *CartUsecase) AddItem(ctx context.Context, sess *session.Session, productID string, locale i18n.Locale) (CartResponse, error) {
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if p.StockQuantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	item := cart.Item{
		ProductID: p.ID,
		Name:      p.Name(string(locale)),
		UnitPrice: p.EffectivePrice(),
	}
	if p.ImageURL != nil {
		item.Image = *p.ImageURL
	}

	var out CartResponse
	sess.Do(func(c *cart.Cart) {
		c.Add(item)
		out = snapshot(c)
	})
	return out, nil
}

func (u *CartUsecase) SetQuantity(sess *session.Session, productID string, quantity int64) (CartResponse, error) {
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	var out CartResponse
	sess.Do(func(c *cart.Cart) {
		c.SetQuantity(productID, quantity)
		out = snapshot(c)
	})
	return out, nil
}

func (u *CartUsecase) RemoveItem(sess *session.Session, productID string) (CartResponse, error) {
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	var out CartResponse
	sess.Do(func(c *cart.Cart) {
		c.Remove(productID)
		out = snapshot(c)
	})
	return out, nil
}

func (u *CartUsecase) Clear(sess *session.Session) CartResponse {
	var out CartResponse
	sess.Do(func(c *cart.Cart) {
		c.Clear()
		out = snapshot(c)
	})
	return out
}
