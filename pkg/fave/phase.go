package fave

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Burst timing. All offsets are relative to the burst's t=0.
const (
	// BurstDuration is the full length of a burst and the delay before the
	// delegate hears about a tap.
	BurstDuration = time.Second
	// ExpandDuration is how long the ring takes to grow to full size.
	ExpandDuration = 129800 * time.Microsecond
	// CollapseDuration is how long the ring takes to hollow out and fade.
	CollapseDuration = 108900 * time.Microsecond
	// IconShowDelay is when the selected icon becomes visible.
	IconShowDelay = ExpandDuration + CollapseDuration/2

	IgniteShowDelay    = CollapseDuration / 3
	IgniteShowDuration = 400 * time.Millisecond
	// IgniteHideDelay is measured from the start of the ignite-show phase.
	IgniteHideDelay    = 200 * time.Millisecond
	IgniteHideDuration = 700 * time.Millisecond
)

// Phase is one timed segment of a visual element.
type Phase struct {
	Delay    time.Duration
	Duration time.Duration
}

// End returns the offset at which the phase finishes.
func (p Phase) End() time.Duration {
	return p.Delay + p.Duration
}

// Started reports whether elapsed has reached the phase.
func (p Phase) Started(elapsed time.Duration) bool {
	return elapsed >= p.Delay
}

// Done reports whether the phase has finished at elapsed.
func (p Phase) Done(elapsed time.Duration) bool {
	return elapsed >= p.End()
}

// Active reports whether elapsed falls inside the phase.
func (p Phase) Active(elapsed time.Duration) bool {
	return p.Started(elapsed) && !p.Done(elapsed)
}

// Value evaluates an eased segment from→to over the phase at elapsed,
// holding from before the phase and to after it.
func (p Phase) Value(elapsed time.Duration, from, to float64, fn ease.TweenFunc) float64 {
	if !p.Started(elapsed) {
		return from
	}
	if p.Done(elapsed) {
		return to
	}
	t := float32((elapsed - p.Delay).Seconds())
	return float64(fn(t, float32(from), float32(to-from), float32(p.Duration.Seconds())))
}

// Progress is Value over 0→1 with linear easing.
func (p Phase) Progress(elapsed time.Duration) float64 {
	return p.Value(elapsed, 0, 1, ease.Linear)
}
