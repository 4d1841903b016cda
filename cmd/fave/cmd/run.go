package cmd

import (
	stderrors "errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/fave/pkg/animation"
	"github.com/go-drift/fave/pkg/errors"
	"github.com/go-drift/fave/pkg/fave"
	"github.com/go-drift/fave/pkg/graphics"
	"github.com/go-drift/fave/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Open an interactive preview window",
		Long: `Open a window with one favorite button in the middle.

Click the button or press Space to toggle it. Selecting plays the burst;
deselecting switches the icon silently. Press Esc or Q to quit.

Flags:
  --palette          Cycle spark colors through a fixed palette
  --scale N          Window scale relative to the button size (default: 6)`,
		Usage: "fave run [--palette] [--scale N]",
		Run:   runRun,
	})
}

var windowBackground = color.RGBA{R: 250, G: 250, B: 252, A: 255}

// paletteDots cycles across sparks when --palette is set.
var paletteDots = []fave.DotColors{
	{First: graphics.RGB(255, 95, 109), Second: graphics.RGB(255, 195, 113)},
	{First: graphics.RGB(72, 198, 239), Second: graphics.RGB(111, 134, 214)},
	{First: graphics.RGB(127, 219, 106), Second: graphics.RGB(247, 235, 104)},
}

var errQueueFull = stderrors.New("dispatch queue full")

type runOptions struct {
	palette bool
	scale   float64
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g := newPreview(cfg.Button, opts)
	defer g.close()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("fave - click or press Space to toggle")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{scale: 6}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--palette":
			opts.palette = true
		case "--scale":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scale requires a value")
			}
			if _, err := fmt.Sscan(args[i+1], &opts.scale); err != nil || opts.scale < 2 {
				return opts, fmt.Errorf("invalid --scale %q: want a number >= 2", args[i+1])
			}
			i++
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

// previewDelegate logs selection changes and optionally supplies spark colors.
type previewDelegate struct {
	palette []fave.DotColors
}

func (d previewDelegate) OnSelectionChanged(_ *fave.Button, selected bool) {
	fmt.Printf("selection changed: %v\n", selected)
}

func (d previewDelegate) DotColors(*fave.Button) []fave.DotColors {
	return d.palette
}

// preview is the ebiten.Game hosting one button.
type preview struct {
	button   *fave.Button
	timeline *animation.Timeline[*fave.Burst]
	width    int
	height   int

	// queue carries callbacks dispatched from timer goroutines.
	queue chan func()
	// icons caches GPU copies of the state images.
	icons map[image.Image]*ebiten.Image
}

func newPreview(cfg fave.Config, opts runOptions) *preview {
	g := &preview{
		timeline: animation.NewTimeline[*fave.Burst](),
		width:    int(cfg.Size.Width * opts.scale),
		height:   int(cfg.Size.Height * opts.scale),
		queue:    make(chan func(), 16),
		icons:    make(map[image.Image]*ebiten.Image),
	}
	platform.RegisterDispatch(g.enqueue)

	delegate := previewDelegate{}
	if opts.palette {
		delegate.palette = paletteDots
	}
	g.button = fave.NewButton(
		fave.WithConfig(cfg),
		fave.WithHost(g.timeline),
		fave.WithDelegate(delegate),
	)
	w, h := cfg.Size.Width, cfg.Size.Height
	g.button.SetBounds(graphics.RectFromLTWH((float64(g.width)-w)/2, (float64(g.height)-h)/2, w, h))
	return g
}

// enqueue hands callback to the next Update. It runs on timer goroutines and
// must not block them; a full queue drops the call and reports it.
func (g *preview) enqueue(callback func()) {
	select {
	case g.queue <- callback:
	default:
		errors.Report(errors.New("fave.preview.dispatch", errors.KindDispatch, errQueueFull))
	}
}

func (g *preview) close() {
	platform.RegisterDispatch(nil)
	g.timeline.Dispose()
}

func (g *preview) Update() error {
drain:
	for {
		select {
		case fn := <-g.queue:
			fn()
		default:
			break drain
		}
	}

	animation.StepTickers()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.button.Toggle()
	}

	x, y := ebiten.CursorPosition()
	pos := graphics.Offset{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseDown, Position: pos})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.button.HandlePointer(fave.PointerEvent{Phase: fave.PointerPhaseUp, Position: pos})
	}
	return nil
}

func (g *preview) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)

	p := ebitenPainter{dst: screen, icons: g.icons}
	center := g.button.Bounds().Center()
	var (
		latest  *fave.Burst
		elapsed time.Duration
	)
	g.timeline.Each(func(b *fave.Burst, e time.Duration) {
		fave.PaintBurst(p, center, b, e)
		latest, elapsed = b, e
	})
	if !g.button.Selected() {
		latest = nil
	}
	fave.PaintIcon(p, g.button, latest, elapsed)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("selected: %v  bursts: %d", g.button.Selected(), g.timeline.Len()))
}

func (g *preview) Layout(int, int) (int, int) {
	return g.width, g.height
}

// ebitenPainter draws bursts and icons with ebiten's vector helpers.
type ebitenPainter struct {
	dst   *ebiten.Image
	icons map[image.Image]*ebiten.Image
}

func (p ebitenPainter) FillCircle(center graphics.Offset, radius float64, c graphics.Color) {
	vector.DrawFilledCircle(p.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (p ebitenPainter) StrokeCircle(center graphics.Offset, radius, width float64, c graphics.Color) {
	vector.StrokeCircle(p.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), c, true)
}

func (p ebitenPainter) DrawImage(img image.Image, dst graphics.Rect, opacity float64) {
	icon, ok := p.icons[img]
	if !ok {
		icon = ebiten.NewImageFromImage(img)
		p.icons[img] = icon
	}
	b := icon.Bounds()
	if b.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width()/float64(b.Dx()), dst.Height()/float64(b.Dy()))
	op.GeoM.Translate(dst.Left, dst.Top)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	p.dst.DrawImage(icon, op)
}
