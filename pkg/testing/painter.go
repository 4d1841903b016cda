package testing

import (
	"image"

	"github.com/go-drift/fave/pkg/graphics"
)

// CircleOp is one recorded circle draw. Width is zero for fills.
type CircleOp struct {
	Center graphics.Offset
	Radius float64
	Width  float64
	Color  graphics.Color
}

// ImageOp is one recorded image draw.
type ImageOp struct {
	Image   image.Image
	Dst     graphics.Rect
	Opacity float64
}

// RecordingPainter records draw calls; it implements fave.Painter and
// fave.IconPainter.
type RecordingPainter struct {
	Fills   []CircleOp
	Strokes []CircleOp
	Images  []ImageOp
}

// FillCircle implements fave.Painter.
func (p *RecordingPainter) FillCircle(center graphics.Offset, radius float64, color graphics.Color) {
	p.Fills = append(p.Fills, CircleOp{Center: center, Radius: radius, Color: color})
}

// StrokeCircle implements fave.Painter.
func (p *RecordingPainter) StrokeCircle(center graphics.Offset, radius, width float64, color graphics.Color) {
	p.Strokes = append(p.Strokes, CircleOp{Center: center, Radius: radius, Width: width, Color: color})
}

// DrawImage implements fave.IconPainter.
func (p *RecordingPainter) DrawImage(img image.Image, dst graphics.Rect, opacity float64) {
	p.Images = append(p.Images, ImageOp{Image: img, Dst: dst, Opacity: opacity})
}

// Reset clears recorded operations.
func (p *RecordingPainter) Reset() {
	p.Fills, p.Strokes, p.Images = nil, nil, nil
}
