package riot

import (
	"context"
	"riftwind/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting window.
type limitWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter holds every window the API key is constrained by.
type RateLimiter struct {
	windows []*limitWindow
	mu      sync.Mutex
}

// NewRateLimiter creates a limiter from the configured windows.
func NewRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*limitWindow{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     now,
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     now,
			},
		},
	}
}

// resetCounts clears any window whose interval has elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// checkLimits verifies that every window still has room.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// incrementCounts consumes one slot from each window.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Wait blocks until a request slot is available in every window or the
// context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		r.resetCounts()
		if r.checkLimits() {
			r.incrementCounts()
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}
