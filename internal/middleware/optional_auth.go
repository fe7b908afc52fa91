package middleware

import (
	"errors"
	"strings"

	"okean/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// OptionalAuthJWT attaches the user claims when a valid bearer token is
// present and silently continues as a guest otherwise. Used on routes
// open to both guests and signed-in users, like checkout.
func OptionalAuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return next(c)
			}

			token, err := jwt.Parse(strings.TrimSpace(parts[1]), func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return next(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}

			if userID, err := parseString(claims["sub"]); err == nil && userID != "" {
				c.Set(CtxUserIDKey, userID)
			}
			if role, err := parseString(claims["role"]); err == nil && role != "" {
				c.Set(CtxUserRoleKey, role)
			}
			if tv, err := parseInt(claims["tv"]); err == nil && tv >= 0 {
				c.Set(CtxTokenVersionKey, tv)
			}

			return next(c)
		}
	}
}
