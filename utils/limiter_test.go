package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other keys are independent.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, 20*time.Millisecond)

	assert.True(t, rl.Allow("k"))
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("k"), "window must slide past old requests")
}

func TestRateLimiterSweepEvictsStaleKeys(t *testing.T) {
	rl := NewRateLimiter(5, 50*time.Millisecond)
	for i := 0; i < 50; i++ {
		rl.Allow(fmt.Sprintf("key-%d", i))
	}
	assert.Len(t, rl.requests, 50)

	time.Sleep(60 * time.Millisecond)
	rl.mu.Lock()
	rl.sweep(time.Now())
	rl.mu.Unlock()
	assert.Empty(t, rl.requests, "stale keys must be evicted")
}
