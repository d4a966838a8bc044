package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeaseTTL(t *testing.T) {
	t.Run("outlives the completion call", func(t *testing.T) {
		ttl := LeaseTTL(2 * time.Minute)
		assert.Greater(t, ttl, 2*time.Minute)
		assert.Equal(t, 2*time.Minute+30*time.Second, ttl)
	})

	t.Run("unbounded call falls back to the default lease", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), LeaseTTL(0))
		lock := NewGenerationLock(nil, LeaseTTL(0))
		assert.Equal(t, 5*time.Minute, lock.ttl)
	})

	t.Run("bounded call sets the derived lease", func(t *testing.T) {
		lock := NewGenerationLock(nil, LeaseTTL(time.Minute))
		assert.Equal(t, 90*time.Second, lock.ttl)
	})
}
