package bot

import (
	"sync"
	"time"
)

const (
	defaultRateLimitMax    = 5
	defaultRateLimitWindow = 60 * time.Second
)

// RateLimiter allows each user max commands per sliding window.
type RateLimiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	requests map[string][]time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = defaultRateLimitMax
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return &RateLimiter{
		max:      max,
		window:   window,
		requests: make(map[string][]time.Time),
	}
}

func (r *RateLimiter) Allow(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	pruned := r.recent(userID, now.Add(-r.window))

	if len(pruned) >= r.max {
		r.requests[userID] = pruned
		return false
	}

	r.requests[userID] = append(pruned, now)
	return true
}

// Prune forgets users with no requests inside the window and returns how
// many were dropped.
func (r *RateLimiter) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.window)
	dropped := 0
	for userID := range r.requests {
		if pruned := r.recent(userID, cutoff); len(pruned) > 0 {
			r.requests[userID] = pruned
			continue
		}
		delete(r.requests, userID)
		dropped++
	}
	return dropped
}

func (r *RateLimiter) recent(userID string, cutoff time.Time) []time.Time {
	timestamps := r.requests[userID]
	pruned := timestamps[:0]
	for _, t := range timestamps {
		if t.After(cutoff) {
			pruned = append(pruned, t)
		}
	}
	return pruned
}
