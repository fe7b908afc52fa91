package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName carries the session identifier.
const CookieName = "sid"

// DefaultTTL is how long an idle session is kept before the sweeper
// drops it.
const DefaultTTL = 24 * time.Hour

// Manager maps session identifiers to live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the live session for id, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	s := m.sessions[id]
	m.mu.RUnlock()
	if s != nil {
		s.touch(m.now())
	}
	return s
}

// GetOrCreate returns the session for id, creating a fresh one (with a
// new identifier) when id is empty or unknown.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s := m.Get(id); s != nil {
			return s
		}
	}

	now := m.now()
	s := newSession(uuid.NewString(), now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Sweep drops sessions idle longer than the TTL and returns how many
// were removed. Called periodically from the server.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(now, m.ttl) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
