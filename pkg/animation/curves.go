package animation

import "math"

// Easing here is Penner-style: functions take (t, b, c, d), that is elapsed
// time, begin value, total change and duration, and return the value itself.

// ElasticOut is an elastic ease-out in Penner form with explicit amplitude a
// and period p (both in the units of c and t respectively).
//
// ElasticOut(0, ...) is b and ElasticOut(t >= d, ...) is b+c. In between the
// value overshoots b+c and settles along an exponentially damped sine. When
// a is smaller than |c| it is clamped to c so the phase shift stays defined.
// A non-positive period falls back to 0.3·d.
func ElasticOut(t, b, c, d, a, p float64) float64 {
	if t <= 0 {
		return b
	}
	if d <= 0 || t >= d {
		return b + c
	}
	if p <= 0 {
		p = d * 0.3
	}

	var s float64
	if a == 0 || a < math.Abs(c) {
		a = c
		s = p / 4
	} else {
		s = p / (2 * math.Pi) * math.Asin(c/a)
	}

	t /= d
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}
