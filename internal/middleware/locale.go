package middleware

import (
	"okean/internal/i18n"

	"github.com/labstack/echo/v4"
)

const CtxLocaleKey = "locale"

// ResolveLocale picks the request locale: the session preference wins,
// then the Accept-Language header, then the default. Runs after
// VisitorSession.
func ResolveLocale() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			locale := i18n.DefaultLocale

			if sess := SessionFrom(c); sess != nil {
				if saved, ok := sess.Get(i18n.PrefKey); ok {
					if l, valid := i18n.ParseLocale(saved); valid {
						locale = l
					}
				} else {
					locale = i18n.MatchAcceptLanguage(c.Request().Header.Get("Accept-Language"))
				}
			}

			c.Set(CtxLocaleKey, locale)
			return next(c)
		}
	}
}

// LocaleFrom returns the locale ResolveLocale stored on the context.
func LocaleFrom(c echo.Context) i18n.Locale {
	if l, ok := c.Get(CtxLocaleKey).(i18n.Locale); ok {
		return l
	}
	return i18n.DefaultLocale
}
