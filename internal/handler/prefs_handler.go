package handler

import (
	"net/http"

	"okean/internal/i18n"
	"okean/internal/middleware"
	"okean/internal/theme"

	"github.com/labstack/echo/v4"
)

// PrefsHandler serves the visitor's language and theme preferences and
// the translation catalog the views render from.
type PrefsHandler struct {
	catalog *i18n.Catalog
}

func NewPrefsHandler(catalog *i18n.Catalog) *PrefsHandler {
	return &PrefsHandler{catalog: catalog}
}

func (h *PrefsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/i18n/:locale", h.translations)
	e.GET("/prefs", h.getPrefs)
	e.PUT("/prefs/language", h.setLanguage)
	e.PUT("/prefs/theme", h.setTheme)
	e.POST("/prefs/theme/toggle", h.toggleTheme)
}

type prefsResponse struct {
	Language i18n.Locale `json:"language"`
	Theme    theme.Theme `json:"theme"`
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (h *PrefsHandler) translations(c echo.Context) error {
	locale, ok := i18n.ParseLocale(c.Param("locale"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown locale"})
	}
	return c.JSON(http.StatusOK, h.catalog.Table(locale))
}

func (h *PrefsHandler) getPrefs(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	lang := i18n.NewStore(h.catalog, sess)
	th := theme.NewStore(sess)

	return c.JSON(http.StatusOK, prefsResponse{
		Language: lang.Locale(),
		Theme:    th.Theme(),
	})
}

func (h *PrefsHandler) setLanguage(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req setLanguageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	locale, ok := i18n.ParseLocale(req.Language)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported language"})
	}

	lang := i18n.NewStore(h.catalog, sess)
	lang.SetLocale(locale)
	th := theme.NewStore(sess)

	return c.JSON(http.StatusOK, prefsResponse{
		Language: lang.Locale(),
		Theme:    th.Theme(),
	})
}

func (h *PrefsHandler) setTheme(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	var req setThemeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	t, ok := theme.Parse(req.Theme)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported theme"})
	}

	th := theme.NewStore(sess)
	th.Set(t)
	lang := i18n.NewStore(h.catalog, sess)

	return c.JSON(http.StatusOK, prefsResponse{
		Language: lang.Locale(),
		Theme:    th.Theme(),
	})
}

func (h *PrefsHandler) toggleTheme(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no session"})
	}

	th := theme.NewStore(sess)
	th.Toggle()
	lang := i18n.NewStore(h.catalog, sess)

	return c.JSON(http.StatusOK, prefsResponse{
		Language: lang.Locale(),
		Theme:    th.Theme(),
	})
}
