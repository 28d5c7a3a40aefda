package utils

import (
	"sync"
	"time"
)

// RateLimiter is an in-memory sliding-window counter keyed by caller
// identity. The table is bounded: a sweep evicts stale keys periodically
// and whenever the capacity is reached. Counters are per-process only and
// are not shared across instances.
type RateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	max       int
	window    time.Duration
	capacity  int
	lastSweep time.Time
}

// NewRateLimiter allows max requests per key within window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests:  make(map[string][]time.Time),
		max:       max,
		window:    window,
		capacity:  10000,
		lastSweep: time.Now(),
	}
}

// Allow records a request for key and reports whether it is within the
// limit. Requests older than the window are discarded as a side effect.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(now)
		rl.lastSweep = now
	}

	cutoff := now.Add(-rl.window)
	kept := rl.requests[key][:0]
	for _, ts := range rl.requests[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= rl.max {
		rl.requests[key] = kept
		return false
	}

	if _, known := rl.requests[key]; !known && len(rl.requests) >= rl.capacity {
		rl.sweep(now)
		if len(rl.requests) >= rl.capacity {
			// Table still full of live keys; refuse rather than grow.
			return false
		}
	}

	rl.requests[key] = append(kept, now)
	return true
}

// sweep drops entries older than the window and deletes empty keys.
// Caller must hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-rl.window)
	for key, timestamps := range rl.requests {
		kept := timestamps[:0]
		for _, ts := range timestamps {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = kept
		}
	}
}
