package testing

import (
	"sync"
	"time"

	"github.com/go-drift/fave/pkg/animation"
)

// FakeClock provides controllable time for deterministic burst playback.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Install makes c the animation clock and registers a restore of the
// previous clock with cleanup (typically t.Cleanup).
func (c *FakeClock) Install(cleanup func(func())) *FakeClock {
	prev := animation.SetClock(c)
	cleanup(func() { animation.SetClock(prev) })
	return c
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Step advances the clock by d and steps every active animation ticker,
// as one host frame would.
func (c *FakeClock) Step(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
