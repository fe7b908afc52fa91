package handler

import (
	"net/http"

	"okean/internal/config"
	"okean/internal/middleware"
	"okean/internal/repository"
	"okean/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler lets a signed-in user edit their profile.
type AccountHandler struct {
	uc *usecase.UserUsecase
}

func NewAccountHandler(uc *usecase.UserUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

func (h *AccountHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	acc := e.Group("/account")
	acc.Use(middleware.AuthJWT(cfg))
	acc.Use(middleware.TokenVersionGuard(userRepo))
	acc.PUT("/profile", h.updateProfile)
}

type profileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

func (h *AccountHandler) updateProfile(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
