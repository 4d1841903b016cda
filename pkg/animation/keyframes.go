package animation

import (
	"math"
	"time"
)

// Keyframes plays a buffer of values spaced evenly over Duration, with
// linear interpolation between neighbours. The first value is shown at
// t=0 and the last at t=Duration.
type Keyframes struct {
	Values   []float64
	Duration time.Duration
}

// Len returns the number of keyframes.
func (k Keyframes) Len() int { return len(k.Values) }

// Empty reports whether there is nothing to play.
func (k Keyframes) Empty() bool { return len(k.Values) == 0 }

// At returns the value at elapsed. ok is false for an empty buffer.
func (k Keyframes) At(elapsed time.Duration) (value float64, ok bool) {
	n := len(k.Values)
	switch {
	case n == 0:
		return 0, false
	case n == 1 || elapsed <= 0:
		return k.Values[0], true
	case elapsed >= k.Duration:
		return k.Values[n-1], true
	}

	pos := float64(elapsed) / float64(k.Duration) * float64(n-1)
	i := int(math.Floor(pos))
	return LerpFloat64(k.Values[i], k.Values[i+1], pos-float64(i)), true
}
