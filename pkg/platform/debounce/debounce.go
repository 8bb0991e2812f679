// Package debounce suppresses accidental rapid re-submission of one logical
// form. A Guard remembers only the last accepted submission key; repeating
// that key inside the window reads as a duplicate. It is advisory - it is
// not an idempotency key and offers no cross-instance guarantee.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow matches the debounce observed across the portal's dialogs.
const DefaultWindow = 20 * time.Second

// Guard holds exactly one (key, timestamp) slot per guarded surface.
// Construct one Guard per surface so lifetimes stay explicit; do not share
// a Guard between unrelated forms.
type Guard struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time

	lastKey string
	lastAt  time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithWindow overrides the suppression window.
func WithWindow(window time.Duration) Option {
	return func(g *Guard) {
		if window > 0 {
			g.window = window
		}
	}
}

// WithClock injects a clock for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

// New constructs a Guard with the default 20s window.
func New(opts ...Option) *Guard {
	g := &Guard{window: DefaultWindow, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ShouldSuppress reports whether key repeats the last accepted submission
// within the window. A different key never suppresses, regardless of timing.
func (g *Guard) ShouldSuppress(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if key == "" || key != g.lastKey {
		return false
	}
	return g.now().Sub(g.lastAt) < g.window
}

// RecordAttempt stores key as the last accepted submission. A new key always
// overwrites the previous slot and resets the clock.
func (g *Guard) RecordAttempt(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastKey = key
	g.lastAt = g.now()
}

// Reset clears the slot; call when the guarded surface is dismissed.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastKey = ""
	g.lastAt = time.Time{}
}
