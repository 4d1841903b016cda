package fave

import (
	"time"

	"github.com/go-drift/fave/pkg/graphics"
)

// DotColors is the two-tone coloring of one spark.
type DotColors struct {
	First  graphics.Color
	Second graphics.Color
}

// Delegate observes selection changes made by the user.
type Delegate interface {
	// OnSelectionChanged runs once the burst has visually completed after a
	// tap, with the selection state at that moment.
	OnSelectionChanged(b *Button, selected bool)
}

// DotColorsProvider is an optional capability of a Delegate. A nil or empty
// result means "use the configured dot colors". Fewer pairs than sparks
// repeat cyclically.
type DotColorsProvider interface {
	DotColors(b *Button) []DotColors
}

// DelegateFunc adapts a function to Delegate.
type DelegateFunc func(b *Button, selected bool)

// OnSelectionChanged implements Delegate.
func (f DelegateFunc) OnSelectionChanged(b *Button, selected bool) { f(b, selected) }

// Host plays bursts. Schedule must return without waiting for playback.
type Host interface {
	Schedule(b *Burst)
}

// Scheduler runs fn once delay has passed, on the UI thread.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

type discardHost struct{}

func (discardHost) Schedule(*Burst) {}
