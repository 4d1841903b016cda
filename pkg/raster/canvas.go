// Package raster paints fave bursts into in-memory RGBA images.
//
// It backs headless frame export and image-based tests; interactive hosts
// draw through their own toolkit instead.
package raster

import (
	"image"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/fave/pkg/graphics"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// Canvas is a software painter over an *image.RGBA. It implements
// fave.Painter and fave.IconPainter.
type Canvas struct {
	img *image.RGBA
}

// New creates a transparent canvas of the given pixel size.
func New(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col, replacing what was there.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillCircle paints a solid disc.
func (c *Canvas) FillCircle(center graphics.Offset, radius float64, col graphics.Color) {
	if radius <= 0 || col.Alpha() == 0 {
		return
	}
	z := c.rasterizer()
	addCircle(z, center, radius, false)
	c.paint(z, col)
}

// StrokeCircle paints a ring of the given width centered on radius.
func (c *Canvas) StrokeCircle(center graphics.Offset, radius, width float64, col graphics.Color) {
	if width <= 0 || col.Alpha() == 0 {
		return
	}
	outer := radius + width/2
	inner := radius - width/2
	if outer <= 0 {
		return
	}
	z := c.rasterizer()
	addCircle(z, center, outer, false)
	if inner > 0 {
		// Opposite winding cancels coverage inside the hole.
		addCircle(z, center, inner, true)
	}
	c.paint(z, col)
}

// DrawImage scales img into dst, multiplying its alpha by opacity.
func (c *Canvas) DrawImage(img image.Image, dst graphics.Rect, opacity float64) {
	if img == nil || opacity <= 0 {
		return
	}
	r := image.Rect(
		int(math.Round(dst.Left)), int(math.Round(dst.Top)),
		int(math.Round(dst.Right)), int(math.Round(dst.Bottom)),
	)
	if r.Empty() {
		return
	}
	var opts *draw.Options
	if opacity < 1 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(opacity * 255))})}
	}
	draw.ApproxBiLinear.Scale(c.img, r, img, img.Bounds(), draw.Over, opts)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return encodePNG(w, c.img)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (c *Canvas) paint(z *vector.Rasterizer, col graphics.Color) {
	z.DrawOp = draw.Over
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// addCircle appends a closed circle built from four cubic segments.
func addCircle(z *vector.Rasterizer, center graphics.Offset, r float64, reverse bool) {
	cx, cy := float32(center.X), float32(center.Y)
	rr := float32(r)
	k := float32(kappa * r)

	// Quadrant end points, clockwise in screen space from +X.
	pts := [4][2]float32{{cx + rr, cy}, {cx, cy + rr}, {cx - rr, cy}, {cx, cy - rr}}
	// Tangent directions at each point for clockwise travel.
	tan := [4][2]float32{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}

	dir := float32(1)
	order := [5]int{0, 1, 2, 3, 0}
	if reverse {
		dir = -1
		order = [5]int{0, 3, 2, 1, 0}
	}

	z.MoveTo(pts[0][0], pts[0][1])
	for i := 0; i < 4; i++ {
		a, b := order[i], order[i+1]
		c1x := pts[a][0] + dir*tan[a][0]*k
		c1y := pts[a][1] + dir*tan[a][1]*k
		c2x := pts[b][0] - dir*tan[b][0]*k
		c2y := pts[b][1] - dir*tan[b][1]*k
		z.CubeTo(c1x, c1y, c2x, c2y, pts[b][0], pts[b][1])
	}
	z.ClosePath()
}
