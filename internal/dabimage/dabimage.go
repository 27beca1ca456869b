// Package dabimage rasterizes brush dab footprints into a coverage mask.
//
// Each dab is an ellipse, built from four cubic Bézier arcs and filled with
// golang.org/x/image/vector. Dabs are composited with Porter-Duff "over" so
// overlapping dabs build up coverage the way a real brush does.
package dabimage

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the control point distance that makes a cubic Bézier the best
// approximation of a quarter circle.
const kappa = 0.5522847498307936

// Dab is a single elliptical brush footprint.
type Dab struct {
	X, Y   float64 // center
	RX, RY float64 // radii
	Angle  float64 // rotation in radians

	// Opacity is the dab alpha in [0, 1].
	Opacity float64
}

// Canvas accumulates dab coverage.
type Canvas struct {
	mask *image.Alpha
	r    *vector.Rasterizer
}

// New creates an empty canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		mask: image.NewAlpha(image.Rect(0, 0, max(width, 1), max(height, 1))),
		r:    vector.NewRasterizer(1, 1),
	}
}

// Mask returns the accumulated coverage.
func (c *Canvas) Mask() *image.Alpha { return c.mask }

// Stamp composites d onto the canvas. Dabs outside the canvas are clipped.
func (c *Canvas) Stamp(d Dab) {
	rx, ry := math.Abs(d.RX), math.Abs(d.RY)
	if rx == 0 || ry == 0 || d.Opacity <= 0 {
		return
	}

	// Rasterize only the dab's bounding box.
	ext := math.Max(rx, ry)
	bbox := image.Rect(
		int(math.Floor(d.X-ext)), int(math.Floor(d.Y-ext)),
		int(math.Ceil(d.X+ext)), int(math.Ceil(d.Y+ext)),
	).Intersect(c.mask.Bounds())
	if bbox.Empty() {
		return
	}

	c.r.Reset(bbox.Dx(), bbox.Dy())
	c.r.DrawOp = draw.Over

	sin, cos := math.Sincos(d.Angle)
	pt := func(ux, uy float64) (float32, float32) {
		x, y := ux*rx, uy*ry
		return float32(d.X + x*cos - y*sin - float64(bbox.Min.X)),
			float32(d.Y + x*sin + y*cos - float64(bbox.Min.Y))
	}

	c.r.MoveTo(pt(1, 0))
	arcs := [4][6]float64{
		{1, kappa, kappa, 1, 0, 1},
		{-kappa, 1, -1, kappa, -1, 0},
		{-1, -kappa, -kappa, -1, 0, -1},
		{kappa, -1, 1, -kappa, 1, 0},
	}
	for _, a := range arcs {
		bx, by := pt(a[0], a[1])
		cx, cy := pt(a[2], a[3])
		dx, dy := pt(a[4], a[5])
		c.r.CubeTo(bx, by, cx, cy, dx, dy)
	}
	c.r.ClosePath()

	alpha := uint8(math.Round(math.Min(d.Opacity, 1) * 0xff))
	c.r.Draw(c.mask, bbox, image.NewUniform(color.Alpha{A: alpha}), image.Point{})
}

// Image composites the coverage over bg using fg as the paint color.
func (c *Canvas) Image(fg, bg color.Color) *image.RGBA {
	b := c.mask.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.DrawMask(dst, b, image.NewUniform(fg), image.Point{}, c.mask, b.Min, draw.Over)
	return dst
}

// WritePNG encodes the composited image as PNG.
func (c *Canvas) WritePNG(w io.Writer, fg, bg color.Color) error {
	return png.Encode(w, c.Image(fg, bg))
}
