package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/fave/pkg/animation"
	"github.com/go-drift/fave/pkg/errors"
	"github.com/go-drift/fave/pkg/fave"
	"github.com/go-drift/fave/pkg/graphics"
	"github.com/go-drift/fave/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Export a burst as PNG frames",
		Long: `Select the button once and write every frame of the burst as a PNG image.

Frames are named frame_000.png, frame_001.png, ... and include the icon.
The canvas is twice the configured button size so the sparks fit.

Flags:
  -o, --out DIR          Output directory (default: frames)
  --fps N                Frames per second, at most 1000 (default: 60)
  --background COLOR     Background as #RRGGBB or #AARRGGBB (default: transparent)`,
		Usage: "fave render [-o DIR] [--fps N] [--background COLOR]",
		Run:   runRender,
	})
}

type renderOptions struct {
	out        string
	fps        float64
	background graphics.Color
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}

	count := 0
	err = renderFrames(cfg.Button, opts, func(i int, c *raster.Canvas) error {
		path := filepath.Join(opts.out, fmt.Sprintf("frame_%03d.png", i))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := c.EncodePNG(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
		count++
		return f.Close()
	})
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d frames to %s\n", count, opts.out)
	return nil
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{out: "frames", fps: animation.DefaultFPS}
	for i := 0; i < len(args); i++ {
		name, value, inline := strings.Cut(args[i], "=")
		if !inline {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		var err error
		switch name {
		case "-o", "--out":
			opts.out = value
		case "--fps":
			opts.fps, err = parseFPS(value)
		case "--background":
			opts.background, err = graphics.ParseHex(value)
		default:
			return opts, fmt.Errorf("unknown flag %q", name)
		}
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}
	return opts, nil
}

var errNoBurst = stderrors.New("no burst was scheduled")

// burstCapture is a Host that keeps the most recent burst.
type burstCapture struct {
	burst *fave.Burst
}

func (c *burstCapture) Schedule(b *fave.Burst) { c.burst = b }

// renderFrames selects a button built from cfg and hands each frame of the
// resulting burst to emit. The canvas is reused between frames. Failures
// come back as *errors.Error of kind KindRender.
func renderFrames(cfg fave.Config, opts renderOptions, emit func(i int, c *raster.Canvas) error) error {
	if !(opts.fps > 0 && opts.fps <= animation.MaxFPS) {
		return errors.New("fave.render", errors.KindRender, fmt.Errorf("invalid fps %v", opts.fps))
	}
	host := &burstCapture{}
	btn := fave.NewButton(fave.WithConfig(cfg), fave.WithHost(host))

	w, h := cfg.Size.Width, cfg.Size.Height
	btn.SetBounds(graphics.RectFromLTWH(w/2, h/2, w, h))
	btn.Toggle()
	if host.burst == nil {
		return errors.New("fave.render", errors.KindRender, errNoBurst)
	}

	canvas := raster.New(int(2*w), int(2*h))
	center := btn.Bounds().Center()
	step := time.Duration(float64(time.Second) / opts.fps)
	duration := host.burst.Duration()
	for i := 0; ; i++ {
		elapsed := time.Duration(i) * step
		if elapsed > duration {
			break
		}
		canvas.Clear(opts.background)
		fave.PaintBurst(canvas, center, host.burst, elapsed)
		fave.PaintIcon(canvas, btn, host.burst, elapsed)
		if err := emit(i, canvas); err != nil {
			return errors.New("fave.render", errors.KindRender, fmt.Errorf("frame %d: %w", i, err))
		}
	}
	return nil
}
