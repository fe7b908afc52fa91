// Package session holds per-visitor server-side state: the shopping cart
// and the preference map behind the language and theme stores. A session
// is identified by an opaque cookie value and lives in memory only, so
// carts do not survive a server restart. Language and theme survive via
// the preference cookies set by the HTTP layer.
package session

import (
	"sync"
	"time"

	"okean/internal/cart"
)

// Session is one visitor's state. Handlers serialize access through Do,
// which keeps each visitor's mutations strictly ordered even though the
// HTTP server itself is concurrent.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Cart
	prefs    map[string]string
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		cart:     cart.New(),
		prefs:    make(map[string]string),
		lastSeen: now,
	}
}

// Do runs fn with exclusive access to the session's cart.
func (s *Session) Do(fn func(c *cart.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
}

// Get implements prefs.Preferences.
func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.prefs[key]
	return v, ok
}

// Set implements prefs.Preferences.
func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[key] = value
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
