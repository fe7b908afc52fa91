package server

import (
	"okean/internal/config"
	appmw "okean/internal/middleware"
	"okean/internal/repository"

	"github.com/labstack/echo/v4"
)

// Deps are the cross-cutting dependencies route guards need.
type Deps struct {
	UserRepo repository.UserRepository
}

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers, deps Deps) {
	h.Auth.RegisterRoutes(e, deps.UserRepo)
	h.Catalog.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg, deps.UserRepo)
	h.Account.RegisterRoutes(e, cfg, deps.UserRepo)
	h.Prefs.RegisterRoutes(e)
	h.Contact.RegisterRoutes(e)

	admin := e.Group("/admin")
	admin.Use(appmw.AuthJWT(cfg))
	admin.Use(appmw.TokenVersionGuard(deps.UserRepo))
	admin.Use(appmw.AdminRoleGuard())

	h.AdminProduct.RegisterRoutes(admin)
	h.AdminCategory.RegisterRoutes(admin)
	h.AdminOrder.RegisterRoutes(admin)
	h.AdminUser.RegisterRoutes(admin)
	h.AdminReport.RegisterRoutes(admin)
	h.AdminSettings.RegisterRoutes(admin)
}
