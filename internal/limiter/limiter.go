// Package limiter implements the process-wide fixed-window request
// throttle applied ahead of list mutation endpoints.
package limiter

import (
	"sync"
	"time"
)

// Window counts admitted requests in a fixed time window. When the
// window elapses the counter resets; while the counter is at the limit
// further requests are rejected. The throttle is global, not per-user.
type Window struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time

	start time.Time
	count int
}

// New returns a limiter admitting up to limit requests per window.
func New(limit int, window time.Duration) *Window {
	return NewWithClock(limit, window, time.Now)
}

// NewWithClock is New with an injected clock, for deterministic tests.
func NewWithClock(limit int, window time.Duration, now func() time.Time) *Window {
	return &Window{limit: limit, window: window, now: now}
}

// Allow reports whether a request may proceed and, if so, counts it
// against the current window.
func (w *Window) Allow() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	if w.start.IsZero() || now.Sub(w.start) >= w.window {
		w.start = now
		w.count = 0
	}
	if w.count >= w.limit {
		return false
	}
	w.count++
	return true
}
