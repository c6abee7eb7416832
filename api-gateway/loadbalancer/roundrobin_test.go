package loadbalancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobin(t *testing.T) {
	t.Run("rejects empty server list", func(t *testing.T) {
		_, err := NewRoundRobin(nil)
		assert.Error(t, err)
	})

	t.Run("rotates through instances in order", func(t *testing.T) {
		rr, err := NewRoundRobin([]string{"http://a:8080", "http://b:8080", "http://c:8080"})
		require.NoError(t, err)

		assert.Equal(t, "http://a:8080", rr.Next())
		assert.Equal(t, "http://b:8080", rr.Next())
		assert.Equal(t, "http://c:8080", rr.Next())
		assert.Equal(t, "http://a:8080", rr.Next())
	})

	t.Run("single instance always returned", func(t *testing.T) {
		rr, err := NewRoundRobin([]string{"http://only:8080"})
		require.NoError(t, err)

		assert.Equal(t, "http://only:8080", rr.Next())
		assert.Equal(t, "http://only:8080", rr.Next())
	})

	t.Run("add server ignores duplicates", func(t *testing.T) {
		rr, err := NewRoundRobin([]string{"http://a:8080"})
		require.NoError(t, err)

		rr.AddServer("http://b:8080")
		rr.AddServer("http://b:8080")

		assert.Len(t, rr.GetServers(), 2)
	})

	t.Run("remove server resets index when out of range", func(t *testing.T) {
		rr, err := NewRoundRobin([]string{"http://a:8080", "http://b:8080"})
		require.NoError(t, err)

		rr.Next()
		rr.RemoveServer("http://b:8080")

		assert.Equal(t, []string{"http://a:8080"}, rr.GetServers())
		assert.Equal(t, "http://a:8080", rr.Next())
	})

	t.Run("stats report servers and index", func(t *testing.T) {
		rr, err := NewRoundRobin([]string{"http://a:8080", "http://b:8080"})
		require.NoError(t, err)

		rr.Next()
		stats := rr.GetStats()

		assert.Equal(t, 2, stats["server_count"])
		assert.Equal(t, 1, stats["current_index"])
	})
}
