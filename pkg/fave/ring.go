package fave

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/go-drift/fave/pkg/animation"
	"github.com/go-drift/fave/pkg/graphics"
)

const (
	// RingStartRadius is the ring's radius at t=0; a zero radius circle is
	// not drawable on every host.
	RingStartRadius = 0.01
	// RingLineWidth is the ring's outline width.
	RingLineWidth = 3.0
	// ringScale relates the ring's final diameter to the button width.
	ringScale = 1.3
)

// Ring describes the expanding disc that collapses into a hollow ring.
type Ring struct {
	StartRadius float64
	EndRadius   float64
	FromColor   graphics.Color
	ToColor     graphics.Color
	LineWidth   float64
	// Expand grows the disc and shifts its color.
	Expand Phase
	// Collapse hollows the disc out from the center while it fades.
	Collapse Phase
}

// RingState is one frame of a Ring.
type RingState struct {
	Visible bool
	// Radius is the outer radius.
	Radius float64
	// HoleRadius is the radius of the cleared center; 0 means a solid disc.
	HoleRadius float64
	Color      graphics.Color
	LineWidth  float64
}

func newRing(radius float64, from, to graphics.Color) Ring {
	return Ring{
		StartRadius: RingStartRadius,
		EndRadius:   radius,
		FromColor:   from,
		ToColor:     to,
		LineWidth:   RingLineWidth,
		Expand:      Phase{Delay: 0, Duration: ExpandDuration},
		Collapse:    Phase{Delay: ExpandDuration, Duration: CollapseDuration},
	}
}

// End returns when the ring disappears.
func (r Ring) End() time.Duration {
	return max(r.Expand.End(), r.Collapse.End())
}

// StateAt returns the ring's frame at elapsed.
func (r Ring) StateAt(elapsed time.Duration) RingState {
	if elapsed < 0 || elapsed >= r.End() {
		return RingState{}
	}

	color := animation.TweenColor(r.FromColor, r.ToColor).Evaluate(r.Expand.Progress(elapsed))
	state := RingState{
		Visible:   true,
		Radius:    r.Expand.Value(elapsed, r.StartRadius, r.EndRadius, ease.OutCubic),
		Color:     color,
		LineWidth: r.LineWidth,
	}
	if r.Collapse.Started(elapsed) {
		state.HoleRadius = r.Collapse.Value(elapsed, 0, r.EndRadius, ease.InQuad)
		state.LineWidth = r.Collapse.Value(elapsed, r.LineWidth, 0, ease.Linear)
		state.Color = color.ScaleAlpha(r.Collapse.Value(elapsed, 1, 0, ease.InQuad))
	}
	return state
}
