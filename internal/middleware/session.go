package middleware

import (
	"net/http"

	"okean/internal/config"
	"okean/internal/session"

	"github.com/labstack/echo/v4"
)

const CtxSessionKey = "session"

// VisitorSession reads the session cookie, attaches the (possibly fresh)
// session to the echo context, and re-issues the cookie when a new
// session was created.
func VisitorSession(cfg config.Config, mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if ck, err := c.Cookie(session.CookieName); err == nil {
				id = ck.Value
			}

			sess := mgr.GetOrCreate(id)
			if sess.ID != id {
				c.SetCookie(&http.Cookie{
					Name:     session.CookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.CookieSecure,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int(cfg.SessionTTL.Seconds()),
				})
			}

			c.Set(CtxSessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom pulls the visitor session a VisitorSession middleware put
// on the context. Nil when the middleware did not run.
func SessionFrom(c echo.Context) *session.Session {
	s, _ := c.Get(CtxSessionKey).(*session.Session)
	return s
}
