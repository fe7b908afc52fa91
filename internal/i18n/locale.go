// Package i18n holds the three display locales of the storefront and the
// static translation catalog shared by all views.
package i18n

import "golang.org/x/text/language"

// Locale is one of the three supported display languages.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleTJ Locale = "tj"
	LocaleEN Locale = "en"
)

// DefaultLocale is used when no valid preference is stored.
const DefaultLocale = LocaleRU

// Locales lists every supported locale.
func Locales() []Locale {
	return []Locale{LocaleRU, LocaleTJ, LocaleEN}
}

// ParseLocale validates a locale code. ok is false for anything outside
// the supported set; callers keep their current locale in that case.
func ParseLocale(code string) (Locale, bool) {
	switch Locale(code) {
	case LocaleRU, LocaleTJ, LocaleEN:
		return Locale(code), true
	}
	return "", false
}

// matcher prefers Russian, then Tajik, then English.
// x/text has no "tj" tag; Tajik is tg.
var matcher = language.NewMatcher([]language.Tag{
	language.Russian,
	language.Make("tg"),
	language.English,
})

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header. Empty or unparseable headers yield the default.
func MatchAcceptLanguage(header string) Locale {
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, _ := matcher.Match(tags...)
	switch idx {
	case 1:
		return LocaleTJ
	case 2:
		return LocaleEN
	default:
		return LocaleRU
	}
}
