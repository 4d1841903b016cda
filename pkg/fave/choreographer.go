package fave

import (
	"fmt"
	"time"

	"github.com/go-drift/fave/pkg/animation"
	"github.com/go-drift/fave/pkg/graphics"
)

// Spark radii relative to the ring radius.
const (
	igniteFromFactor = 0.8
	igniteToFactor   = 1.1
)

// BurstState is where a burst is in its choreography.
//
//	        select edge
//	Idle ───────────────► Igniting ◄──┐
//	 ▲                       │        │
//	 │                       ▼        │
//	 │                   Collapsing ──┘
//	 │    all parts done     │
//	 └───────────────────────┘
//
// Collapsing is the ring's collapse window inside Igniting.
type BurstState int

const (
	BurstIdle BurstState = iota
	BurstIgniting
	BurstCollapsing
)

// String returns a human-readable representation of the burst state.
func (s BurstState) String() string {
	switch s {
	case BurstIdle:
		return "idle"
	case BurstIgniting:
		return "igniting"
	case BurstCollapsing:
		return "collapsing"
	default:
		return fmt.Sprintf("BurstState(%d)", int(s))
	}
}

// IconAnimation is the icon's part of a burst.
type IconAnimation struct {
	// Scale holds the elastic bounce samples, played from t=0.
	Scale animation.Keyframes
	// RevealDelay is when the icon becomes visible.
	RevealDelay time.Duration
}

// StateAt returns the icon's scale and opacity at elapsed.
func (i IconAnimation) StateAt(elapsed time.Duration) (scale, opacity float64) {
	scale = 1
	if v, ok := i.Scale.At(elapsed); ok {
		scale = v
	}
	if elapsed < i.RevealDelay {
		return scale, 0
	}
	return scale, 1
}

// Burst is everything one select edge animates. It is created fresh per edge
// and handed to the Host; nothing refers to it once it has played.
type Burst struct {
	ID     uint64
	Size   graphics.Size
	Ring   Ring
	Sparks []Spark
	Icon   IconAnimation
}

// Duration implements animation.Playable: the end of the last part.
func (b *Burst) Duration() time.Duration {
	d := max(b.Ring.End(), b.Icon.Scale.Duration, b.Icon.RevealDelay)
	for _, s := range b.Sparks {
		d = max(d, s.End())
	}
	return d
}

// StateAt maps burst-relative time to the choreography state.
func (b *Burst) StateAt(elapsed time.Duration) BurstState {
	switch {
	case elapsed < 0 || elapsed >= b.Duration():
		return BurstIdle
	case b.Ring.Collapse.Active(elapsed):
		return BurstCollapsing
	default:
		return BurstIgniting
	}
}

// BurstOptions carries what the choreographer needs from the button.
type BurstOptions struct {
	Size       graphics.Size
	SparkCount int
	CircleFrom graphics.Color
	CircleTo   graphics.Color
	DotColors  DotColors
	// ColorSource, if set, is asked for per-spark colors once per burst.
	ColorSource func() []DotColors
}

// RingRadius returns the final ring radius for a button of the given size.
func RingRadius(size graphics.Size) float64 {
	return size.Scale(ringScale).Width / 2
}

// Choreographer turns select edges into scheduled bursts.
type Choreographer struct {
	host   Host
	nextID uint64
}

// NewChoreographer returns a choreographer that schedules on h.
// A nil host discards bursts.
func NewChoreographer(h Host) *Choreographer {
	if h == nil {
		h = discardHost{}
	}
	return &Choreographer{host: h}
}

// Animate builds and schedules the burst for a selection change. It returns
// nil and schedules nothing when selected is false or duration is not
// positive; the caller's state change is then instantaneous.
//
// Bursts are never cancelled: a new edge while one is playing layers a
// second burst on top.
func (c *Choreographer) Animate(selected bool, duration time.Duration, opts BurstOptions) *Burst {
	if duration <= 0 || !selected {
		return nil
	}

	radius := RingRadius(opts.Size)

	var colors []DotColors
	if opts.ColorSource != nil {
		colors = opts.ColorSource()
	}

	c.nextID++
	burst := &Burst{
		ID:   c.nextID,
		Size: opts.Size,
		Ring: newRing(radius, opts.CircleFrom, opts.CircleTo),
		Sparks: LayoutSparks(SparkLayout{
			Count:       opts.SparkCount,
			InnerRadius: radius * igniteFromFactor,
			OuterRadius: radius * igniteToFactor,
			DotRadii:    DotRadiiFor(opts.Size.Width),
			Colors:      colors,
			Defaults:    opts.DotColors,
		}),
		Icon: IconAnimation{
			Scale: animation.Keyframes{
				Values:   animation.SampleTween(0, 1, duration, animation.DefaultFPS),
				Duration: duration,
			},
			RevealDelay: IconShowDelay,
		},
	}

	c.host.Schedule(burst)
	return burst
}
