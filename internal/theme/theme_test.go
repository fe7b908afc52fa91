package theme

import (
	"testing"

	"okean/internal/prefs"

	"github.com/stretchr/testify/assert"
)

func TestStore_DefaultsToLight(t *testing.T) {
	s := NewStore(prefs.NewMemory())
	assert.Equal(t, Light, s.Theme())
}

func TestStore_Toggle(t *testing.T) {
	s := NewStore(prefs.NewMemory())

	assert.Equal(t, Dark, s.Toggle())
	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, Dark, s.Toggle())
}

func TestStore_Set_InvalidIgnored(t *testing.T) {
	s := NewStore(prefs.NewMemory())
	s.Set(Dark)

	s.Set(Theme("sepia"))
	assert.Equal(t, Dark, s.Theme())
}

func TestStore_PersistsAcrossRebuild(t *testing.T) {
	p := prefs.NewMemory()

	s := NewStore(p)
	s.Set(Dark)

	s2 := NewStore(p)
	assert.Equal(t, Dark, s2.Theme())
}

func TestStore_CorruptPreferenceFallsBackToLight(t *testing.T) {
	p := prefs.NewMemory()
	p.Set(PrefKey, "neon")

	s := NewStore(p)
	assert.Equal(t, Light, s.Theme())
}
