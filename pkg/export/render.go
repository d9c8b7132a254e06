package export

import (
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// RenderOptions configures RenderProjection.
type RenderOptions struct {
	// Axis is the viewing direction: "x", "y" or "z".
	Axis string
	// Width of the drawing in millimetres; the height follows the aspect ratio.
	Width float64
	// DPI applies to raster formats only.
	DPI         float64
	StrokeWidth float64
	Colour      color.RGBA
	// Outlines draws the silhouette of every sphere in a light grey.
	Outlines bool
}

// Project drops the coordinate along axis and returns the remaining pair
// as 2D drawing coordinates.
func Project(p geometry.Vector3, axis string) (float64, float64, error) {
	switch axis {
	case "x":
		return p.Y, p.Z, nil
	case "y":
		return p.X, p.Z, nil
	case "z":
		return p.X, p.Y, nil
	}
	return 0, 0, fmt.Errorf("unknown axis %q", axis)
}

// Drawing is an orthographic projection of rim polylines onto a canvas.
type Drawing struct {
	Canvas *canvas.Canvas
	scale  float64
	minU   float64
	minV   float64
	margin float64
	axis   string
}

// NewDrawing sizes a canvas to the projected bounding box of the set.
func NewDrawing(set *sphere.Set, opts RenderOptions) (*Drawing, error) {
	bbox := set.BoundingBox()
	if bbox.IsEmpty() {
		return nil, fmt.Errorf("empty sphere set")
	}
	minU, minV, err := Project(bbox.Min, opts.Axis)
	if err != nil {
		return nil, err
	}
	maxU, maxV, _ := Project(bbox.Max, opts.Axis)

	extentU := math.Max(maxU-minU, 1e-9)
	extentV := math.Max(maxV-minV, 1e-9)
	margin := 0.05 * opts.Width
	scale := (opts.Width - 2*margin) / extentU
	height := extentV*scale + 2*margin

	return &Drawing{
		Canvas: canvas.New(opts.Width, height),
		scale:  scale,
		minU:   minU,
		minV:   minV,
		margin: margin,
		axis:   opts.Axis,
	}, nil
}

func (d *Drawing) point(p geometry.Vector3) (float64, float64) {
	u, v, _ := Project(p, d.axis)
	return d.margin + (u-d.minU)*d.scale, d.margin + (v-d.minV)*d.scale
}

// Polylines strokes the given lines
func (d *Drawing) Polylines(lines []rim.Polyline, c color.Color, width float64) {
	ctx := canvas.NewContext(d.Canvas)
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(c)
	ctx.SetStrokeWidth(width)

	for _, l := range lines {
		if len(l.Points) < 2 {
			continue
		}
		poly := &canvas.Polyline{}
		for _, p := range l.Points {
			poly.Add(d.point(p))
		}
		if l.Closed {
			poly.Close()
		}
		ctx.DrawPath(0, 0, poly.ToPath())
	}
}

// Outlines strokes the projected silhouette of every sphere
func (d *Drawing) Outlines(set *sphere.Set, c color.Color, width float64) {
	ctx := canvas.NewContext(d.Canvas)
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(c)
	ctx.SetStrokeWidth(width)
	for _, s := range set.Spheres {
		x, y := d.point(s.Center)
		ctx.DrawPath(x, y, canvas.Circle(s.Radius*d.scale))
	}
}

// RenderProjection draws the polylines as seen along opts.Axis and writes
// the result to path. The format follows the extension (.svg, .pdf, .png, ...).
func RenderProjection(path string, set *sphere.Set, lines []rim.Polyline, opts RenderOptions) error {
	d, err := NewDrawing(set, opts)
	if err != nil {
		return err
	}
	if opts.Outlines {
		d.Outlines(set, color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}, opts.StrokeWidth/2)
	}
	d.Polylines(lines, opts.Colour, opts.StrokeWidth)

	if err := renderers.Write(path, d.Canvas, canvas.Resolution(opts.DPI/25.4)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
