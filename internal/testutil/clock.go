// Package testutil holds deterministic helpers shared by package tests:
// a stepping wall clock, a sequential ID generator, seeded randomness and a
// small sample catalogue.
package testutil

import (
	"sync"
	"time"
)

// Epoch is the fixed instant sample data and clocks start from.
var Epoch = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// SteppingClock is a wall clock for tests. Every Now call returns the
// previous value plus Step, starting at Start.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// NewSteppingClock creates a clock whose first Now returns start.
// A zero step makes it a fixed clock.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

// Now returns the current reading and advances the clock.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}

// Reset rewinds the clock to start.
func (c *SteppingClock) Reset(start time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next = start
}

// FixedNow returns a func that always reports t.
func FixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
