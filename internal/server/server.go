// Package server assembles the echo engine: global middleware, the
// visitor session layer and every route group.
package server

import (
	"okean/internal/config"
	"okean/internal/handler"
	appmw "okean/internal/middleware"
	"okean/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers bundles everything New needs to register routes.
type Handlers struct {
	Auth          *handler.AuthHandler
	Catalog       *handler.CatalogHandler
	Cart          *handler.CartHandler
	Order         *handler.OrderHandler
	Account       *handler.AccountHandler
	Prefs         *handler.PrefsHandler
	Contact       *handler.ContactHandler
	AdminProduct  *handler.AdminProductHandler
	AdminCategory *handler.AdminCategoryHandler
	AdminOrder    *handler.AdminOrderHandler
	AdminUser     *handler.AdminUserHandler
	AdminReport   *handler.AdminReportHandler
	AdminSettings *handler.AdminSettingsHandler
}

func New(cfg config.Config, sessions *session.Manager, h Handlers, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	e.Use(appmw.VisitorSession(cfg, sessions))
	e.Use(appmw.ResolveLocale())

	registerRoutes(e, cfg, h, deps)
	return e
}
