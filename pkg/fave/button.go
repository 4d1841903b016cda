package fave

import (
	"fmt"
	"image"
	"time"

	"github.com/go-drift/fave/pkg/errors"
	"github.com/go-drift/fave/pkg/graphics"
	"github.com/go-drift/fave/pkg/platform"
)

// PointerPhase is the phase of a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent is a single pointer update in the button's coordinate space.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
}

// Button is the favorite toggle.
//
// Button is not safe for concurrent use; the host calls it from the UI
// goroutine, and delayed callbacks return there through the Scheduler.
type Button struct {
	cfg      Config
	bounds   graphics.Rect
	selected bool
	pressed  bool

	// animationsEnabled is false only inside withoutAnimation.
	animationsEnabled bool

	choreographer *Choreographer
	scheduler     Scheduler

	delegate   Delegate
	delegateID int
}

// NewButton builds a button. It panics with an *errors.Error of kind
// KindConfig if either state image is missing.
func NewButton(opts ...Option) *Button {
	b := &Button{
		cfg:               DefaultConfig(),
		animationsEnabled: true,
		choreographer:     NewChoreographer(nil),
		scheduler:         platform.TimerScheduler{},
	}
	for _, opt := range opts {
		opt(b)
	}
	mustHaveImages("fave.NewButton", b.cfg)
	if b.cfg.SparkCount < 1 {
		b.cfg.SparkCount = DefaultSparkCount
	}
	if b.choreographer.host == nil {
		b.choreographer.host = discardHost{}
	}
	if b.scheduler == nil {
		b.scheduler = platform.TimerScheduler{}
	}
	b.bounds = graphics.RectFromLTWH(0, 0, b.cfg.Size.Width, b.cfg.Size.Height)
	return b
}

func mustHaveImages(op string, cfg Config) {
	if cfg.NormalImage == nil {
		errors.Fatal(op, errors.KindConfig, fmt.Errorf("normal state: %w", errors.ErrMissingImage))
	}
	if cfg.SelectImage == nil {
		errors.Fatal(op, errors.KindConfig, fmt.Errorf("selected state: %w", errors.ErrMissingImage))
	}
}

// Config returns a copy of the current configuration.
func (b *Button) Config() Config {
	return b.cfg
}

// SetConfig replaces the configuration. Like NewButton it panics when an
// image is missing. Bounds follow the new size.
func (b *Button) SetConfig(cfg Config) {
	mustHaveImages("fave.Button.SetConfig", cfg)
	if cfg.SparkCount < 1 {
		cfg.SparkCount = DefaultSparkCount
	}
	b.cfg = cfg
	b.bounds = graphics.RectFromLTWH(b.bounds.Left, b.bounds.Top, cfg.Size.Width, cfg.Size.Height)
}

// Bounds returns the button's hit area.
func (b *Button) Bounds() graphics.Rect {
	return b.bounds
}

// SetBounds moves and resizes the button. Burst geometry follows the new
// width from the next burst on.
func (b *Button) SetBounds(r graphics.Rect) {
	b.bounds = r
	b.cfg.Size = r.Size()
}

// Selected reports whether the button is favorited.
func (b *Button) Selected() bool {
	return b.selected
}

// Image returns the icon for the current state.
func (b *Button) Image() image.Image {
	if b.selected {
		return b.cfg.SelectImage
	}
	return b.cfg.NormalImage
}

// SetDelegate registers d without taking ownership of it and returns a
// function that removes exactly this registration. A later SetDelegate
// replaces d; the earlier removal function then does nothing.
func (b *Button) SetDelegate(d Delegate) (remove func()) {
	b.delegateID++
	id := b.delegateID
	b.delegate = d
	return func() {
		if b.delegateID == id {
			b.delegate = nil
		}
	}
}

// SetSelected changes the selection. Setting the current value does nothing.
// With animated=false the state changes without a burst.
func (b *Button) SetSelected(selected, animated bool) {
	if selected == b.selected {
		return
	}
	if animated {
		b.setSelected(selected)
		return
	}

	b.withoutAnimation(func() {
		b.setSelected(selected)
	})
	// Zero duration settles the terminal state without scheduling anything.
	b.animateSelect(b.selected, 0)
}

// Toggle flips the selection as a completed tap does, then tells the
// delegate once the burst has had time to finish.
func (b *Button) Toggle() {
	b.setSelected(!b.selected)

	if b.delegate == nil {
		return
	}
	b.scheduler.After(BurstDuration, b.notifyDelegate)
}

// notifyDelegate reports the current selection to whichever delegate is
// registered when the delay expires.
func (b *Button) notifyDelegate() {
	defer errors.Recover("fave.notifyDelegate")
	if d := b.delegate; d != nil {
		d.OnSelectionChanged(b, b.selected)
	}
}

// HandlePointer implements touch-up-inside: a press that starts and ends
// inside the bounds toggles the button.
func (b *Button) HandlePointer(event PointerEvent) {
	inside := b.bounds.Contains(event.Position)
	switch event.Phase {
	case PointerPhaseDown:
		b.pressed = inside
	case PointerPhaseUp:
		fire := b.pressed && inside
		b.pressed = false
		if fire {
			b.Toggle()
		}
	case PointerPhaseCancel:
		b.pressed = false
	}
}

// setSelected stores the selection and, on an actual edge with animations
// enabled, starts the burst.
func (b *Button) setSelected(selected bool) {
	if selected == b.selected {
		return
	}
	b.selected = selected
	if !b.animationsEnabled {
		return
	}
	b.animateSelect(selected, BurstDuration)
}

// withoutAnimation runs fn with animations disabled and restores the flag
// even if fn panics.
func (b *Button) withoutAnimation(fn func()) {
	prev := b.animationsEnabled
	b.animationsEnabled = false
	defer func() { b.animationsEnabled = prev }()
	fn()
}

func (b *Button) animateSelect(selected bool, d time.Duration) *Burst {
	return b.choreographer.Animate(selected, d, b.burstOptions())
}

func (b *Button) burstOptions() BurstOptions {
	opts := BurstOptions{
		Size:       b.cfg.Size,
		SparkCount: b.cfg.SparkCount,
		CircleFrom: b.cfg.CircleFromColor,
		CircleTo:   b.cfg.CircleToColor,
		DotColors:  b.cfg.DotDefaults(),
	}
	if p, ok := b.delegate.(DotColorsProvider); ok {
		opts.ColorSource = func() []DotColors { return p.DotColors(b) }
	}
	return opts
}
