package i18n

import "okean/internal/prefs"

// PrefKey is the fixed preference key the active locale is stored under.
const PrefKey = "language"

// Store holds one visitor's active locale and persists every change.
type Store struct {
	catalog *Catalog
	pref    prefs.Preferences
	locale  Locale
}

// NewStore hydrates the active locale from the preference store,
// falling back to the default when the stored value is absent or invalid.
func NewStore(catalog *Catalog, pref prefs.Preferences) *Store {
	locale := DefaultLocale
	if saved, ok := pref.Get(PrefKey); ok {
		if l, valid := ParseLocale(saved); valid {
			locale = l
		}
	}
	return &Store{catalog: catalog, pref: pref, locale: locale}
}

// Locale returns the current active locale.
func (s *Store) Locale() Locale {
	return s.locale
}

// SetLocale switches the active locale and persists it. Unsupported
// values are ignored and the current locale is kept.
func (s *Store) SetLocale(l Locale) {
	if _, ok := ParseLocale(string(l)); !ok {
		return
	}
	s.locale = l
	s.pref.Set(PrefKey, string(l))
}

// T translates key in the active locale; unknown keys pass through.
func (s *Store) T(key string) string {
	return s.catalog.Translate(s.locale, key)
}
