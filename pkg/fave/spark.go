package fave

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-drift/fave/pkg/graphics"
)

// secondDotTrail is how far, in degrees, a spark's second dot trails the
// first around the circle.
const secondDotTrail = 8.0

// Spark describes one two-dot spark of a burst.
type Spark struct {
	Index int
	// Angle is the spark's direction in degrees, clockwise from the +X axis.
	Angle       float64
	InnerRadius float64
	OuterRadius float64
	// DotRadii are the radii of the first and second dot.
	DotRadii [2]float64
	Colors   DotColors
	// Show makes the spark visible and pushes it out to OuterRadius.
	Show Phase
	// Hide shrinks and fades the dots.
	Hide Phase
}

// SparkState is one frame of a Spark.
type SparkState struct {
	Visible bool
	// Radius is the dots' distance from the burst center.
	Radius float64
	// DotScale multiplies DotRadii.
	DotScale float64
	Opacity  float64
}

func (s *Spark) schedule() {
	s.Show = Phase{Delay: IgniteShowDelay, Duration: IgniteShowDuration}
	s.Hide = Phase{Delay: IgniteShowDelay + IgniteHideDelay, Duration: IgniteHideDuration}
}

// End returns when the spark disappears.
func (s Spark) End() time.Duration {
	return max(s.Show.End(), s.Hide.End())
}

// StateAt returns the spark's frame at elapsed.
func (s Spark) StateAt(elapsed time.Duration) SparkState {
	if !s.Show.Started(elapsed) || elapsed >= s.End() {
		return SparkState{}
	}
	return SparkState{
		Visible:  true,
		Radius:   s.Show.Value(elapsed, s.InnerRadius, s.OuterRadius, ease.OutCubic),
		DotScale: s.Hide.Value(elapsed, 1, 0, ease.InQuad),
		Opacity:  s.Hide.Value(elapsed, 1, 0, ease.Linear),
	}
}

// DotCenters returns where the two dots sit at the given radius around
// center.
func (s Spark) DotCenters(center graphics.Offset, radius float64) [2]graphics.Offset {
	return [2]graphics.Offset{
		center.Polar(radius, s.Angle),
		center.Polar(radius, s.Angle-secondDotTrail),
	}
}
