package animation

import (
	"math"
	"time"

	"github.com/go-drift/fave/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// [TweenColor] builds the color tween; other types supply their own Lerp.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  graphics.LerpColor,
	}
}

// DefaultFPS is the sampling rate used when SampleTween gets fps <= 0.
const DefaultFPS = 60.0

// Shape of the icon bounce. The amplitude sits just above the total change
// so the phase shift is computed from asin rather than the p/4 fallback.
const (
	ElasticAmplitudeBias = 0.001
	ElasticPeriod        = 0.39988
)

// MaxFPS caps the sampling rate SampleTween accepts. The sample count
// tracks fps, so the cap also bounds the buffer size.
const MaxFPS = 1000.0

// SampleTween evaluates [ElasticOut] from `from` to `to` at a fixed step of
// duration/fps seconds, starting at t=0 and stopping once the accumulated
// time reaches duration. The step is accumulated, not recomputed, so the last
// sample may land a hair past the end.
//
// A non-positive duration yields an empty, non-nil slice. A non-positive or
// non-finite fps means DefaultFPS; larger rates are clamped to MaxFPS.
func SampleTween(from, to float64, duration time.Duration, fps float64) []float64 {
	if duration <= 0 {
		return []float64{}
	}
	if !(fps > 0) || math.IsInf(fps, 1) {
		fps = DefaultFPS
	}
	fps = min(fps, MaxFPS)

	d := duration.Seconds()
	c := to - from
	tpf := d / fps

	values := make([]float64, 0, int(fps)+1)
	for t := 0.0; t < d; t += tpf {
		values = append(values, ElasticOut(t, from, c, d, c+ElasticAmplitudeBias, ElasticPeriod))
	}
	return values
}
