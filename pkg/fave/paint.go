package fave

import (
	"image"
	"time"

	"github.com/go-drift/fave/pkg/graphics"
)

// Painter is the drawing surface a host exposes for bursts.
type Painter interface {
	FillCircle(center graphics.Offset, radius float64, color graphics.Color)
	StrokeCircle(center graphics.Offset, radius, width float64, color graphics.Color)
}

// IconPainter draws an image scaled into dst with the given opacity.
type IconPainter interface {
	DrawImage(img image.Image, dst graphics.Rect, opacity float64)
}

// PaintBurst draws the ring and sparks of b at elapsed around center.
// Nothing is drawn outside the burst's lifetime.
func PaintBurst(p Painter, center graphics.Offset, b *Burst, elapsed time.Duration) {
	if b == nil {
		return
	}
	paintRing(p, center, b.Ring.StateAt(elapsed))
	for _, s := range b.Sparks {
		paintSpark(p, center, s, s.StateAt(elapsed))
	}
}

func paintRing(p Painter, center graphics.Offset, st RingState) {
	if !st.Visible || st.Radius <= 0 {
		return
	}
	if st.HoleRadius <= 0 {
		p.FillCircle(center, st.Radius, st.Color)
	} else if band := st.Radius - st.HoleRadius; band > 0 {
		p.StrokeCircle(center, st.HoleRadius+band/2, band, st.Color)
	}
	if st.LineWidth > 0 {
		p.StrokeCircle(center, st.Radius, st.LineWidth, st.Color)
	}
}

func paintSpark(p Painter, center graphics.Offset, s Spark, st SparkState) {
	if !st.Visible || st.DotScale <= 0 || st.Opacity <= 0 {
		return
	}
	centers := s.DotCenters(center, st.Radius)
	colors := [2]graphics.Color{s.Colors.First, s.Colors.Second}
	for i := range centers {
		r := s.DotRadii[i] * st.DotScale
		if r <= 0 {
			continue
		}
		p.FillCircle(centers[i], r, colors[i].ScaleAlpha(st.Opacity))
	}
}

// PaintIcon draws the button's current image inside its bounds. During a
// burst the icon follows the burst's scale bounce and reveal; pass a nil
// burst for the resting icon.
func PaintIcon(p IconPainter, btn *Button, b *Burst, elapsed time.Duration) {
	img := btn.Image()
	if img == nil {
		return
	}
	bounds := btn.Bounds()
	scale, opacity := 1.0, 1.0
	if b != nil && elapsed < b.Duration() {
		scale, opacity = b.Icon.StateAt(elapsed)
	}
	if opacity <= 0 || scale <= 0 {
		return
	}
	size := bounds.Size().Scale(scale)
	c := bounds.Center()
	p.DrawImage(img, graphics.RectFromLTWH(c.X-size.Width/2, c.Y-size.Height/2, size.Width, size.Height), opacity)
}
