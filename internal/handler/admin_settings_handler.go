package handler

import (
	"net/http"

	"okean/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminSettingsHandler struct {
	uc *usecase.SettingsUsecase
}

func NewAdminSettingsHandler(uc *usecase.SettingsUsecase) *AdminSettingsHandler {
	return &AdminSettingsHandler{uc: uc}
}

func (h *AdminSettingsHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/settings", h.get)
	admin.PUT("/settings", h.update)
}

func (h *AdminSettingsHandler) get(c echo.Context) error {
	out, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminSettingsHandler) update(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req map[string]string
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), adminID, req); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "settings updated"})
}
