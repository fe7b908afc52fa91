// Package prefs is the small key/value store behind the visitor-scoped
// preference stores (language, theme). Over HTTP the values live in
// cookies and in the visitor's session; tests use the in-memory form.
package prefs

import "sync"

// Preferences persists string preferences under fixed keys.
// Writes are best effort: implementations swallow storage errors.
type Preferences interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Memory is a concurrency-safe in-memory Preferences.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
