package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker(t *testing.T) {
	failing := func() error { return errors.New("backend down") }
	succeeding := func() error { return nil }

	t.Run("stays closed under successes", func(t *testing.T) {
		cb := NewCircuitBreaker("test", 3, time.Minute)

		for i := 0; i < 10; i++ {
			assert.NoError(t, cb.Call(succeeding))
		}
		assert.Equal(t, StateClosed, cb.GetState())
	})

	t.Run("opens after consecutive failures", func(t *testing.T) {
		cb := NewCircuitBreaker("test", 3, time.Minute)

		for i := 0; i < 3; i++ {
			assert.Error(t, cb.Call(failing))
		}
		assert.Equal(t, StateOpen, cb.GetState())

		// Open circuit rejects without invoking the function
		called := false
		err := cb.Call(func() error {
			called = true
			return nil
		})
		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("success resets failure count while closed", func(t *testing.T) {
		cb := NewCircuitBreaker("test", 3, time.Minute)

		assert.Error(t, cb.Call(failing))
		assert.Error(t, cb.Call(failing))
		assert.NoError(t, cb.Call(succeeding))
		assert.Error(t, cb.Call(failing))
		assert.Error(t, cb.Call(failing))

		assert.Equal(t, StateClosed, cb.GetState())
	})

	t.Run("half-open closes after recovery", func(t *testing.T) {
		cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

		assert.Error(t, cb.Call(failing))
		assert.Equal(t, StateOpen, cb.GetState())

		time.Sleep(20 * time.Millisecond)

		for i := 0; i < 3; i++ {
			assert.NoError(t, cb.Call(succeeding))
		}
		assert.Equal(t, StateClosed, cb.GetState())
	})

	t.Run("half-open reopens on failure", func(t *testing.T) {
		cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)

		assert.Error(t, cb.Call(failing))
		time.Sleep(20 * time.Millisecond)

		assert.Error(t, cb.Call(failing))
		assert.Equal(t, StateOpen, cb.GetState())
	})
}

func TestCircuitBreakerManager(t *testing.T) {
	m := NewCircuitBreakerManager()

	first := m.GetOrCreate("housing")
	second := m.GetOrCreate("housing")
	assert.Same(t, first, second)

	m.GetOrCreate("stock")
	stats := m.GetAllStats()
	assert.Len(t, stats, 2)
	assert.Contains(t, stats, "housing")
	assert.Contains(t, stats, "stock")
}

func TestDetermineServiceFromPath(t *testing.T) {
	cases := map[string]string{
		"/auth/login":              "user",
		"/users/me":                "user",
		"/admin/users":             "user",
		"/api/fermes":              "housing",
		"/api/workers/12":          "housing",
		"/api/rooms":               "housing",
		"/api/occupancy/3/stats":   "housing",
		"/api/stock":               "stock",
		"/api/transfers/7/confirm": "stock",
		"/api/additions":           "stock",
		"/metrics":                 "",
		"/health":                  "",
	}

	for path, want := range cases {
		assert.Equal(t, want, determineServiceFromPath(path), path)
	}
}
