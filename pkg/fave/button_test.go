package fave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fave/pkg/animation"
	"github.com/go-drift/fave/pkg/errors"
	"github.com/go-drift/fave/pkg/fave"
	"github.com/go-drift/fave/pkg/graphics"
	"github.com/go-drift/fave/pkg/platform"
	favetest "github.com/go-drift/fave/pkg/testing"
)

type harness struct {
	button *fave.Button
	host   *favetest.RecordingHost
	sched  *favetest.FakeScheduler
}

func newHarness(t *testing.T, opts ...fave.Option) *harness {
	t.Helper()
	h := &harness{
		host:  &favetest.RecordingHost{},
		sched: favetest.NewFakeScheduler(),
	}
	base := []fave.Option{
		fave.WithImages(favetest.Icon(), favetest.Icon()),
		fave.WithSize(graphics.Size{Width: 100, Height: 100}),
		fave.WithHost(h.host),
		fave.WithScheduler(h.sched),
	}
	h.button = fave.NewButton(append(base, opts...)...)
	return h
}

type selectionRecorder struct {
	calls []bool
}

func (r *selectionRecorder) OnSelectionChanged(_ *fave.Button, selected bool) {
	r.calls = append(r.calls, selected)
}

type colorDelegate struct {
	selectionRecorder
	colors []fave.DotColors
}

func (d *colorDelegate) DotColors(*fave.Button) []fave.DotColors { return d.colors }

func TestNewButton_MissingImagePanics(t *testing.T) {
	tests := []struct {
		name string
		opts []fave.Option
	}{
		{"none", nil},
		{"normal only", []fave.Option{fave.WithImages(favetest.Icon(), nil)}},
		{"selected only", []fave.Option{fave.WithImages(nil, favetest.Icon())}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(*errors.Error)
				require.True(t, ok, "recovered %T", r)
				assert.Equal(t, errors.KindConfig, err.Kind)
				assert.True(t, errors.Is(err, errors.ErrMissingImage))
			}()
			fave.NewButton(tt.opts...)
		})
	}
}

func TestNewButton_Defaults(t *testing.T) {
	b := fave.NewButton(fave.WithImages(favetest.Icon(), favetest.Icon()), fave.WithSparkCount(0))
	cfg := b.Config()
	assert.Equal(t, fave.DefaultSparkCount, cfg.SparkCount)
	assert.Equal(t, fave.DefaultDotFirstColor, cfg.DotFirstColor)
	assert.Equal(t, fave.DefaultCircleToColor, cfg.CircleToColor)
	assert.Equal(t, fave.DefaultSize, b.Bounds().Size())
	assert.False(t, b.Selected())
}

func TestButton_EndToEndBurst(t *testing.T) {
	h := newHarness(t, fave.WithSparkCount(5))

	h.button.Toggle()

	require.True(t, h.button.Selected())
	require.Equal(t, 1, h.host.Len())
	b := h.host.Last()
	assert.InDelta(t, 0.01, b.Ring.StartRadius, 1e-12)
	assert.InDelta(t, 65.0, b.Ring.EndRadius, 1e-9)
	require.Len(t, b.Sparks, 5)
	for i, want := range []float64{10, 82, 154, 226, 298} {
		assert.InDelta(t, want, b.Sparks[i].Angle, 1e-9)
	}
}

func TestButton_DeselectIsSilent(t *testing.T) {
	h := newHarness(t)
	h.button.Toggle()
	h.host.Reset()

	h.button.Toggle()
	assert.False(t, h.button.Selected())
	assert.Equal(t, 0, h.host.Len())
}

func TestButton_SetSelectedSameValueIsNoop(t *testing.T) {
	rec := &selectionRecorder{}
	h := newHarness(t, fave.WithDelegate(rec))

	h.button.SetSelected(false, true)
	h.button.SetSelected(false, false)
	assert.Equal(t, 0, h.host.Len())

	h.button.SetSelected(true, true)
	require.Equal(t, 1, h.host.Len())
	h.button.SetSelected(true, true)
	h.button.SetSelected(true, false)
	assert.Equal(t, 1, h.host.Len())

	h.sched.Advance(2 * fave.BurstDuration)
	assert.Empty(t, rec.calls, "programmatic changes never notify the delegate")
}

func TestButton_SetSelectedWithoutAnimation(t *testing.T) {
	h := newHarness(t)

	h.button.SetSelected(true, false)

	assert.True(t, h.button.Selected())
	assert.Equal(t, 0, h.host.Len())
	assert.Equal(t, 0, h.sched.Pending())
	assert.Same(t, h.button.Config().SelectImage, h.button.Image())
}

func TestButton_AnimationsReenabledAfterSilentSet(t *testing.T) {
	h := newHarness(t)

	h.button.SetSelected(true, false)
	h.button.SetSelected(false, false)
	h.button.SetSelected(true, true)

	assert.Equal(t, 1, h.host.Len(), "silent sets must not leave animations disabled")
}

func TestButton_DelegateNotifiedAfterBurst(t *testing.T) {
	rec := &selectionRecorder{}
	h := newHarness(t, fave.WithDelegate(rec))

	h.button.Toggle()
	assert.Empty(t, rec.calls, "delegate waits for the burst")

	h.sched.Advance(fave.BurstDuration - time.Millisecond)
	assert.Empty(t, rec.calls)

	h.sched.Advance(time.Millisecond)
	assert.Equal(t, []bool{true}, rec.calls)

	h.button.Toggle()
	h.sched.Advance(fave.BurstDuration)
	assert.Equal(t, []bool{true, false}, rec.calls)
}

func TestButton_NoDelegateNoCallback(t *testing.T) {
	h := newHarness(t)
	h.button.Toggle()
	assert.Equal(t, 0, h.sched.Pending())
}

func TestButton_SetDelegateRemoval(t *testing.T) {
	h := newHarness(t)
	first := &selectionRecorder{}
	second := &selectionRecorder{}

	removeFirst := h.button.SetDelegate(first)
	removeSecond := h.button.SetDelegate(second)
	removeFirst()

	h.button.Toggle()
	h.sched.Advance(fave.BurstDuration)
	assert.Empty(t, first.calls)
	assert.Equal(t, []bool{true}, second.calls)

	removeSecond()
	h.button.Toggle()
	h.sched.Advance(fave.BurstDuration)
	assert.Equal(t, []bool{true}, second.calls)
}

func TestButton_DelegateDotColors(t *testing.T) {
	d := &colorDelegate{colors: []fave.DotColors{pairA, pairB}}
	h := newHarness(t, fave.WithDelegate(d))

	h.button.Toggle()
	b := h.host.Last()
	require.NotNil(t, b)
	for i, s := range b.Sparks {
		want := pairA
		if i%2 == 1 {
			want = pairB
		}
		assert.Equal(t, want, s.Colors, "spark %d", i)
	}
}

func TestButton_DelegateWithoutColorsUsesConfig(t *testing.T) {
	d := &colorDelegate{}
	h := newHarness(t, fave.WithDelegate(d), fave.WithDotColors(pairC.First, pairC.Second))

	h.button.Toggle()
	for _, s := range h.host.Last().Sparks {
		assert.Equal(t, pairC, s.Colors)
	}
}

type capturingHandler struct {
	panics []*errors.PanicError
}

func (h *capturingHandler) HandleError(*errors.Error) {}
func (h *capturingHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func TestButton_DelegatePanicIsReported(t *testing.T) {
	handler := &capturingHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(handler)
	defer errors.SetHandler(old)

	h := newHarness(t, fave.WithDelegate(fave.DelegateFunc(func(*fave.Button, bool) {
		panic("delegate exploded")
	})))

	h.button.Toggle()
	assert.NotPanics(t, func() { h.sched.Advance(fave.BurstDuration) })
	require.Len(t, handler.panics, 1)
	assert.Equal(t, "fave.notifyDelegate", handler.panics[0].Op)
}

func TestButton_HandlePointerTouchUpInside(t *testing.T) {
	h := newHarness(t)
	inside := graphics.Offset{X: 50, Y: 50}
	outside := graphics.Offset{X: 150, Y: 50}

	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseDown, Position: inside})
	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseUp, Position: outside})
	assert.False(t, h.button.Selected(), "release outside cancels")

	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseDown, Position: outside})
	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseUp, Position: inside})
	assert.False(t, h.button.Selected(), "press must start inside")

	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseDown, Position: inside})
	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseCancel, Position: inside})
	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseUp, Position: inside})
	assert.False(t, h.button.Selected(), "cancel disarms")

	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseDown, Position: inside})
	h.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseUp, Position: inside})
	assert.True(t, h.button.Selected())
	assert.Equal(t, 1, h.host.Len())
}

func TestButton_SetBoundsDrivesGeometry(t *testing.T) {
	h := newHarness(t)
	h.button.SetBounds(graphics.RectFromLTWH(10, 10, 200, 200))

	h.button.Toggle()
	assert.InDelta(t, 130.0, h.host.Last().Ring.EndRadius, 1e-9)
	assert.True(t, h.button.Bounds().Contains(graphics.Offset{X: 205, Y: 205}))
}

func TestButton_OnTimeline(t *testing.T) {
	clk := favetest.NewFakeClock().Install(t.Cleanup)
	tl := animation.NewTimeline[*fave.Burst]()
	defer tl.Dispose()

	b := fave.NewButton(
		fave.WithImages(favetest.Icon(), favetest.Icon()),
		fave.WithHost(tl),
		fave.WithScheduler(favetest.NewFakeScheduler()),
	)

	b.Toggle()
	b.Toggle()
	b.Toggle()
	require.Equal(t, 2, tl.Len(), "overlapping bursts both play")

	clk.Step(fave.BurstDuration / 2)
	assert.Equal(t, 2, tl.Len())

	clk.Step(fave.BurstDuration / 2)
	assert.False(t, tl.IsAnimating())
}

type dispatchErrors chan *errors.Error

func (c dispatchErrors) HandleError(err *errors.Error)  { c <- err }
func (c dispatchErrors) HandlePanic(*errors.PanicError) {}

func TestButton_DefaultSchedulerDeliversThroughDispatch(t *testing.T) {
	queue := make(chan func(), 1)
	platform.RegisterDispatch(func(cb func()) { queue <- cb })
	t.Cleanup(platform.ResetForTest)

	rec := &selectionRecorder{}
	b := fave.NewButton(fave.WithImages(favetest.Icon(), favetest.Icon()), fave.WithDelegate(rec))
	b.Toggle()

	select {
	case cb := <-queue:
		assert.Empty(t, rec.calls, "nothing runs before the UI thread drains the queue")
		cb()
	case <-time.After(3 * time.Second):
		t.Fatal("delegate callback was never dispatched")
	}
	b.SetSelected(false, false)
	assert.Equal(t, []bool{true}, rec.calls)
}

func TestButton_DefaultSchedulerWithoutDispatchDropsCallback(t *testing.T) {
	platform.ResetForTest()
	reported := make(dispatchErrors, 1)
	old := errors.DefaultHandler
	errors.SetHandler(reported)
	defer errors.SetHandler(old)

	rec := &selectionRecorder{}
	b := fave.NewButton(fave.WithImages(favetest.Icon(), favetest.Icon()), fave.WithDelegate(rec))
	b.Toggle()

	select {
	case err := <-reported:
		assert.Equal(t, errors.KindDispatch, err.Kind)
		assert.True(t, errors.Is(err, platform.ErrNoDispatch))
	case <-time.After(3 * time.Second):
		t.Fatal("undeliverable callback was never reported")
	}
	// Mutating the button here must not race with the timer goroutine.
	b.SetSelected(false, false)
	assert.Empty(t, rec.calls)
}
