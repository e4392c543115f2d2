// Package vis implements PNG snapshot rendering of detection results.
package vis

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/spaces"
	"github.com/bimkit/roomscan/wallgraph"
)

// Sentinel errors for rendering.
var (
	// ErrNothingToRender indicates both the wall list and the space list
	// were empty — there is no geometry to derive a canvas from.
	ErrNothingToRender = errors.New("vis: nothing to render")

	// ErrBadScale indicates a non-positive pixels-per-meter scale.
	ErrBadScale = errors.New("vis: scale must be positive")
)

// Default rendering parameters.
const (
	// DefaultScale is the canvas resolution in pixels per meter.
	DefaultScale = 40.0

	// DefaultMargin is the blank border around the drawing, in meters.
	DefaultMargin = 0.5

	// DefaultWallWidth is the stroked wall thickness, in meters.
	DefaultWallWidth = 0.08
)

// Options holds rendering parameters.
type Options struct {
	// Scale is the resolution in pixels per meter. Must be positive.
	Scale float64

	// Margin is the blank border around the drawing, in meters.
	Margin float64

	// WallWidth is the stroke thickness of walls, in meters.
	WallWidth float64
}

// Option is a functional option for Render and WritePNG.
type Option func(*Options)

// WithScale sets the canvas resolution in pixels per meter.
// Non-positive values panic with ErrBadScale.
func WithScale(pxPerMeter float64) Option {
	return func(o *Options) {
		if pxPerMeter <= 0 {
			panic(ErrBadScale.Error())
		}
		o.Scale = pxPerMeter
	}
}

// WithMargin sets the blank border around the drawing, in meters.
func WithMargin(m float64) Option {
	return func(o *Options) {
		o.Margin = math.Max(0, m)
	}
}

// DefaultOptions returns the rendering defaults: Scale = DefaultScale,
// Margin = DefaultMargin, WallWidth = DefaultWallWidth.
func DefaultOptions() Options {
	return Options{
		Scale:     DefaultScale,
		Margin:    DefaultMargin,
		WallWidth: DefaultWallWidth,
	}
}

// Render draws walls and detected spaces onto a fresh white canvas sized to
// the geometry's bounding box plus margin. Rooms are filled first (palette
// order follows the input order, i.e. largest room first when the list
// comes from DetectSpaces), walls are stroked on top.
//
// Returns ErrNothingToRender when no geometry is given.
func Render(walls []wallgraph.WallSegment, rooms []spaces.DetectedSpace, opts ...Option) (*image.RGBA, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	min, max, ok := bounds(walls, rooms)
	if !ok {
		return nil, ErrNothingToRender
	}

	// Canvas size: bounding box plus margin on every side, at least 1 px.
	w := int(math.Ceil((max.X - min.X + 2*o.Margin) * o.Scale))
	h := int(math.Ceil((max.Y - min.Y + 2*o.Margin) * o.Scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// World → image: translate by margin, scale, flip Y.
	toPx := func(p geom2d.Point) (float64, float64) {
		return (p.X - min.X + o.Margin) * o.Scale,
			float64(h) - (p.Y-min.Y+o.Margin)*o.Scale
	}

	for i, room := range rooms {
		fillPolygon(img, room.Boundary, toPx, roomColor(i, len(rooms)))
	}

	wallFill := color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	for _, wall := range walls {
		strokeSegment(img, wall.Start, wall.End, o.WallWidth*o.Scale, toPx, wallFill)
	}

	return img, nil
}

// WritePNG renders and encodes to w in one step.
func WritePNG(w io.Writer, walls []wallgraph.WallSegment, rooms []spaces.DetectedSpace, opts ...Option) error {
	img, err := Render(walls, rooms, opts...)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// roomColor spreads room fills evenly around the hue wheel; soft saturation
// keeps the dark wall strokes readable on top.
func roomColor(i, n int) color.Color {
	if n < 1 {
		n = 1
	}

	return colorful.Hsv(float64(i)*360/float64(n), 0.45, 0.95)
}

// bounds returns the world-space bounding box of all geometry.
func bounds(walls []wallgraph.WallSegment, rooms []spaces.DetectedSpace) (min, max geom2d.Point, ok bool) {
	min = geom2d.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = geom2d.Point{X: math.Inf(-1), Y: math.Inf(-1)}

	grow := func(p geom2d.Point) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		ok = true
	}
	for _, w := range walls {
		grow(w.Start)
		grow(w.End)
	}
	for _, r := range rooms {
		for _, p := range r.Boundary {
			grow(p)
		}
	}

	return min, max, ok
}

// fillPolygon rasterizes one closed polygon with the given fill.
func fillPolygon(dst *image.RGBA, poly []geom2d.Point, toPx func(geom2d.Point) (float64, float64), fill color.Color) {
	if len(poly) < 3 {
		return
	}

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	x, y := toPx(poly[0])
	z.MoveTo(float32(x), float32(y))
	for _, p := range poly[1:] {
		x, y = toPx(p)
		z.LineTo(float32(x), float32(y))
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
}

// strokeSegment draws one wall as a filled quad of the given pixel width.
func strokeSegment(dst *image.RGBA, a, b geom2d.Point, widthPx float64, toPx func(geom2d.Point) (float64, float64), fill color.Color) {
	ax, ay := toPx(a)
	bx, by := toPx(b)

	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * widthPx / 2
	ny := dx / length * widthPx / 2

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
}
