package fave

import (
	"image"

	"github.com/go-drift/fave/pkg/graphics"
)

// DefaultSparkCount is the number of sparks in a burst unless configured.
const DefaultSparkCount = 7

// Default colors.
var (
	DefaultDotFirstColor   = graphics.RGB(152, 219, 236)
	DefaultDotSecondColor  = graphics.RGB(247, 188, 48)
	DefaultCircleFromColor = graphics.RGB(221, 70, 136)
	DefaultCircleToColor   = graphics.RGB(205, 143, 246)
)

// DefaultSize is used when no size is configured.
var DefaultSize = graphics.Size{Width: 44, Height: 44}

// Config holds the host-tunable properties of a Button.
type Config struct {
	// DotFirstColor and DotSecondColor color the two dots of every spark
	// unless a DotColorsProvider overrides them.
	DotFirstColor  graphics.Color
	DotSecondColor graphics.Color
	// CircleFromColor is the ring fill at the start of the expand phase,
	// CircleToColor at its end.
	CircleFromColor graphics.Color
	CircleToColor   graphics.Color
	// NormalImage is shown when deselected, SelectImage when selected.
	// Both are required.
	NormalImage image.Image
	SelectImage image.Image
	// SparkCount is the number of sparks per burst.
	SparkCount int
	// Size is the button's bounds size; burst geometry scales with its width.
	Size graphics.Size
}

// DefaultConfig returns a Config with default colors, spark count and size
// and no images.
func DefaultConfig() Config {
	return Config{
		DotFirstColor:   DefaultDotFirstColor,
		DotSecondColor:  DefaultDotSecondColor,
		CircleFromColor: DefaultCircleFromColor,
		CircleToColor:   DefaultCircleToColor,
		SparkCount:      DefaultSparkCount,
		Size:            DefaultSize,
	}
}

// DotDefaults returns the configured spark colors as a pair.
func (c Config) DotDefaults() DotColors {
	return DotColors{First: c.DotFirstColor, Second: c.DotSecondColor}
}

// Option configures a Button at construction.
type Option func(*Button)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(b *Button) { b.cfg = cfg }
}

// WithImages sets the normal and selected icons.
func WithImages(normal, selected image.Image) Option {
	return func(b *Button) {
		b.cfg.NormalImage = normal
		b.cfg.SelectImage = selected
	}
}

// WithDotColors sets the default spark colors.
func WithDotColors(first, second graphics.Color) Option {
	return func(b *Button) {
		b.cfg.DotFirstColor = first
		b.cfg.DotSecondColor = second
	}
}

// WithCircleColors sets the ring's start and end fill colors.
func WithCircleColors(from, to graphics.Color) Option {
	return func(b *Button) {
		b.cfg.CircleFromColor = from
		b.cfg.CircleToColor = to
	}
}

// WithSparkCount sets the number of sparks. Values below 1 keep the default.
func WithSparkCount(n int) Option {
	return func(b *Button) {
		if n >= 1 {
			b.cfg.SparkCount = n
		}
	}
}

// WithSize sets the button size.
func WithSize(size graphics.Size) Option {
	return func(b *Button) { b.cfg.Size = size }
}

// WithHost sets where bursts are scheduled.
func WithHost(h Host) Option {
	return func(b *Button) { b.choreographer.host = h }
}

// WithScheduler sets the delayed-callback scheduler used for delegate
// notification.
func WithScheduler(s Scheduler) Option {
	return func(b *Button) { b.scheduler = s }
}

// WithDelegate registers d at construction. Use SetDelegate to get a
// removal handle.
func WithDelegate(d Delegate) Option {
	return func(b *Button) { b.SetDelegate(d) }
}
