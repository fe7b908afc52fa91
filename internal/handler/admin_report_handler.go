package handler

import (
	"net/http"

	"okean/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminReportHandler serves the dashboard and the reports page.
type AdminReportHandler struct {
	uc        *usecase.ReportUsecase
	contactUC *usecase.ContactUsecase
}

func NewAdminReportHandler(uc *usecase.ReportUsecase, contactUC *usecase.ContactUsecase) *AdminReportHandler {
	return &AdminReportHandler{uc: uc, contactUC: contactUC}
}

func (h *AdminReportHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/dashboard", h.dashboard)
	admin.GET("/reports", h.reports)
	admin.GET("/messages", h.messages)
}

func (h *AdminReportHandler) dashboard(c echo.Context) error {
	out, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminReportHandler) reports(c echo.Context) error {
	out, err := h.uc.Reports(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminReportHandler) messages(c echo.Context) error {
	limit, err := intQuery(c, "limit", 20)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
	}

	out, err := h.contactUC.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
