package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fave/cmd/fave/internal/config"
	"github.com/go-drift/fave/pkg/errors"
	"github.com/go-drift/fave/pkg/fave"
	"github.com/go-drift/fave/pkg/graphics"
	"github.com/go-drift/fave/pkg/raster"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "render", "curve"} {
		assert.Contains(t, commands, name)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	err := execute([]string{"explode"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestExecuteConfigFlagRequiresValue(t *testing.T) {
	assert.Error(t, execute([]string{"--config"}))
}

func TestParseCurveArgs(t *testing.T) {
	opts, err := parseCurveArgs([]string{"--from", "2", "--to=4", "--duration", "500ms", "--fps=30"})
	require.NoError(t, err)
	assert.Equal(t, curveOptions{from: 2, to: 4, duration: 500 * time.Millisecond, fps: 30}, opts)

	for _, args := range [][]string{
		{"--fps", "0"},
		{"--duration", "soon"},
		{"--to"},
		{"--bogus", "1"},
	} {
		_, err := parseCurveArgs(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseFPSRejectsUnusableRates(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-Inf", "0", "-1", "1e19", "1001"} {
		_, err := parseFPS(v)
		assert.Error(t, err, v)
	}
	fps, err := parseFPS("1000")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, fps)

	for _, args := range [][]string{{"--fps", "NaN"}, {"--fps=1e19"}} {
		_, err := parseCurveArgs(args)
		assert.Error(t, err, "curve %v", args)
		_, err = parseRenderArgs(args)
		assert.Error(t, err, "render %v", args)
	}
}

func TestRenderFramesRejectsBadFPS(t *testing.T) {
	res, err := config.Resolve(t.TempDir())
	require.NoError(t, err)

	for _, fps := range []float64{0, 1e19} {
		calls := 0
		err := renderFrames(res.Button, renderOptions{fps: fps}, func(int, *raster.Canvas) error {
			calls++
			return nil
		})
		assert.Error(t, err, "fps=%v", fps)
		assert.Zero(t, calls)
	}
}

func TestWriteCurve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCurve(&buf, curveOptions{to: 1, duration: time.Second, fps: 10}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 10)
	assert.Equal(t, "0\t0s\t0.000000", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1\t100ms\t"), lines[1])
}

func TestParseRenderArgs(t *testing.T) {
	opts, err := parseRenderArgs([]string{"-o", "out", "--fps", "24", "--background=#FFFFFF"})
	require.NoError(t, err)
	assert.Equal(t, "out", opts.out)
	assert.Equal(t, 24.0, opts.fps)
	assert.Equal(t, graphics.ColorWhite, opts.background)

	_, err = parseRenderArgs([]string{"--background", "nope"})
	assert.Error(t, err)
}

func TestRenderFrames(t *testing.T) {
	res, err := config.Resolve(t.TempDir())
	require.NoError(t, err)

	var (
		frames    int
		lastAlpha uint8
	)
	err = renderFrames(res.Button, renderOptions{fps: 60}, func(i int, c *raster.Canvas) error {
		assert.Equal(t, frames, i)
		frames++
		size := c.Image().Bounds().Size()
		lastAlpha = c.Image().RGBAAt(size.X/2, size.Y/2).A
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 61, frames, "t=0 through the end of the burst")
	assert.NotZero(t, lastAlpha, "selected icon is visible at the end")
}

func TestRenderFramesStopsOnError(t *testing.T) {
	cfg := fave.DefaultConfig()
	cfg.NormalImage = config.DefaultIcon(cfg.Size, false, cfg.CircleFromColor)
	cfg.SelectImage = config.DefaultIcon(cfg.Size, true, cfg.CircleFromColor)

	calls := 0
	err := renderFrames(cfg, renderOptions{fps: 60}, func(int, *raster.Canvas) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)

	var faveErr *errors.Error
	require.True(t, errors.As(err, &faveErr))
	assert.Equal(t, errors.KindRender, faveErr.Kind)
	assert.Equal(t, "fave.render", faveErr.Op)
}

type recordingHandler struct {
	errs []*errors.Error
}

func (h *recordingHandler) HandleError(err *errors.Error)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func TestPreviewEnqueueNeverBlocks(t *testing.T) {
	handler := &recordingHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(handler)
	defer errors.SetHandler(old)

	g := &preview{queue: make(chan func(), 1)}
	g.enqueue(func() {})
	assert.Empty(t, handler.errs)

	done := make(chan struct{})
	go func() {
		g.enqueue(func() {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
	require.Len(t, handler.errs, 1)
	assert.Equal(t, errors.KindDispatch, handler.errs[0].Kind)
	assert.ErrorIs(t, handler.errs[0], errQueueFull)
	assert.Len(t, g.queue, 1)
}

func TestParseRunArgs(t *testing.T) {
	opts, err := parseRunArgs([]string{"--palette", "--scale", "4"})
	require.NoError(t, err)
	assert.True(t, opts.palette)
	assert.Equal(t, 4.0, opts.scale)

	_, err = parseRunArgs([]string{"--scale", "1"})
	assert.Error(t, err)
}

func TestPreviewDelegateSuppliesPalette(t *testing.T) {
	var _ fave.DotColorsProvider = previewDelegate{}
	assert.Nil(t, previewDelegate{}.DotColors(nil))
	assert.Equal(t, paletteDots, previewDelegate{palette: paletteDots}.DotColors(nil))
}
