// Package theme keeps the visitor's light/dark preference.
package theme

import "okean/internal/prefs"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// PrefKey is the fixed preference key the theme is stored under.
const PrefKey = "theme"

// Parse validates a theme code.
func Parse(code string) (Theme, bool) {
	switch Theme(code) {
	case Light, Dark:
		return Theme(code), true
	}
	return "", false
}

// Store holds one visitor's theme and persists every change.
type Store struct {
	pref    prefs.Preferences
	current Theme
}

func NewStore(pref prefs.Preferences) *Store {
	current := Light
	if saved, ok := pref.Get(PrefKey); ok {
		if t, valid := Parse(saved); valid {
			current = t
		}
	}
	return &Store{pref: pref, current: current}
}

func (s *Store) Theme() Theme {
	return s.current
}

// Set switches to a specific theme. Invalid values are ignored.
func (s *Store) Set(t Theme) {
	if _, ok := Parse(string(t)); !ok {
		return
	}
	s.current = t
	s.pref.Set(PrefKey, string(t))
}

// Toggle flips between light and dark and persists the result.
func (s *Store) Toggle() Theme {
	if s.current == Light {
		s.Set(Dark)
	} else {
		s.Set(Light)
	}
	return s.current
}
