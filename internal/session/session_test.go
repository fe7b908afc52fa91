package session

import (
	"sync"
	"testing"
	"time"

	"okean/internal/cart"

	"github.com/stretchr/testify/assert"
)

func TestManager_GetOrCreate_NewSession(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.GetOrCreate("")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetOrCreate_ExistingSession(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.GetOrCreate("")
	again := m.GetOrCreate(s.ID)
	assert.Same(t, s, again)
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetOrCreate_UnknownIDGetsFreshSession(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.GetOrCreate("stale-cookie-value")
	assert.NotEqual(t, "stale-cookie-value", s.ID)
}

func TestManager_Get_MissingIsNil(t *testing.T) {
	m := NewManager(time.Hour)
	assert.Nil(t, m.Get("nope"))
}

func TestManager_Sweep_DropsIdleSessions(t *testing.T) {
	m := NewManager(time.Minute)

	now := time.Now()
	m.now = func() time.Time { return now }

	idle := m.GetOrCreate("")
	fresh := m.GetOrCreate("")

	// idle goes quiet, fresh keeps being used
	now = now.Add(2 * time.Minute)
	m.Get(fresh.ID)

	removed := m.Sweep()
	assert.Equal(t, 1, removed)
	assert.Nil(t, m.Get(idle.ID))
	assert.NotNil(t, m.Get(fresh.ID))
}

func TestSession_CartSurvivesAcrossRequests(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.GetOrCreate("")

	s.Do(func(c *cart.Cart) {
		c.Add(cart.Item{ProductID: "p1", Name: "Cement", UnitPrice: 85})
	})

	// same cookie, next request
	again := m.GetOrCreate(s.ID)
	again.Do(func(c *cart.Cart) {
		assert.Equal(t, int64(1), c.TotalItems())
	})
}

func TestSession_Preferences(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.GetOrCreate("")

	_, ok := s.Get("language")
	assert.False(t, ok)

	s.Set("language", "en")
	v, ok := s.Get("language")
	assert.True(t, ok)
	assert.Equal(t, "en", v)
}

func TestSession_ConcurrentMutationsAllLand(t *testing.T) {
	m := NewManager(time.Hour)
	s := m.GetOrCreate("")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(c *cart.Cart) {
				c.Add(cart.Item{ProductID: "p1", UnitPrice: 10})
			})
		}()
	}
	wg.Wait()

	s.Do(func(c *cart.Cart) {
		assert.Equal(t, int64(50), c.TotalItems())
	})
}
