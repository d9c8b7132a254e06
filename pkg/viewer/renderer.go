// Package viewer provides an interactive fyne widget showing sphere rims.
package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
)

const pickRadius = 20

// Segment is a projected line between two screen positions
type Segment struct {
	Rim    int
	X1, Y1 float64
	X2, Y2 float64
	Depth  float64
}

// ProjectRims projects every polyline segment of the rims. Segments with an
// endpoint behind the camera are dropped.
func ProjectRims(cam *Camera, rims []rim.Rim, width, height float64) []Segment {
	var segments []Segment
	for idx, r := range rims {
		for _, l := range r.Polylines {
			n := len(l.Points)
			last := n - 1
			if l.Closed {
				last = n
			}
			for i := 0; i < last; i++ {
				a, b := l.Points[i], l.Points[(i+1)%n]
				x1, y1, z1 := cam.Project(a, width, height)
				x2, y2, z2 := cam.Project(b, width, height)
				if z1 <= 0 || z2 <= 0 {
					continue
				}
				segments = append(segments, Segment{Rim: idx, X1: x1, Y1: y1, X2: x2, Y2: y2, Depth: (z1 + z2) / 2})
			}
		}
	}
	return segments
}

// NearestRim returns the index of the rim with a polyline point closest to
// the screen position, or -1 when none lies within maxDist pixels.
func NearestRim(cam *Camera, rims []rim.Rim, width, height, screenX, screenY, maxDist float64) int {
	best, bestDist := -1, maxDist
	for idx, r := range rims {
		for _, l := range r.Polylines {
			for _, p := range l.Points {
				x, y, z := cam.Project(p, width, height)
				if z <= 0 {
					continue
				}
				if d := math.Hypot(x-screenX, y-screenY); d < bestDist {
					best, bestDist = idx, d
				}
			}
		}
	}
	return best
}

// RimRenderer draws the rims of a sphere set and lets the user orbit, zoom
// and pick a rim.
type RimRenderer struct {
	widget.BaseWidget
	set         *sphere.Set
	rims        []rim.Rim
	camera      *Camera
	colour      color.RGBA
	lines       []*canvas.Line
	marker      *canvas.Circle
	selected    int
	dragStart   *fyne.Position
	isDragging  bool
	width       float64
	height      float64
	onRimSelect func(rim.Rim)
}

// NewRimRenderer creates the widget for a computed result
func NewRimRenderer(set *sphere.Set, res *rim.Result, colour color.RGBA) *RimRenderer {
	r := &RimRenderer{colour: colour, selected: -1}
	r.setData(set, res)
	r.ExtendBaseWidget(r)
	return r
}

func (r *RimRenderer) setData(set *sphere.Set, res *rim.Result) {
	r.set = set
	r.rims = res.Rims
	r.camera = NewCamera(set.BoundingBox())
	r.selected = -1
}

// SetResult replaces the displayed rims and resets the camera
func (r *RimRenderer) SetResult(set *sphere.Set, res *rim.Result) {
	r.setData(set, res)
	r.Render(r.width, r.height)
}

// SetOnRimSelect sets the callback for picked rims
func (r *RimRenderer) SetOnRimSelect(callback func(rim.Rim)) {
	r.onRimSelect = callback
}

// CreateRenderer creates the renderer for the widget
func (r *RimRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &rimWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

func (r *RimRenderer) shade(depth float64, highlight bool) color.RGBA {
	if highlight {
		return color.RGBA{R: 255, G: 60, B: 60, A: 255}
	}
	// farther segments fade out
	f := math.Max(0.35, math.Min(1, 1.5-depth/(2*r.camera.Distance)))
	return color.RGBA{
		R: uint8(float64(r.colour.R) * f),
		G: uint8(float64(r.colour.G) * f),
		B: uint8(float64(r.colour.B) * f),
		A: 255,
	}
}

// Render rebuilds the line objects for the given widget size
func (r *RimRenderer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height

	segments := ProjectRims(r.camera, r.rims, width, height)
	r.lines = make([]*canvas.Line, 0, len(segments))
	for _, s := range segments {
		line := canvas.NewLine(r.shade(s.Depth, s.Rim == r.selected))
		line.StrokeWidth = 1.5
		line.Position1 = fyne.NewPos(float32(s.X1), float32(s.Y1))
		line.Position2 = fyne.NewPos(float32(s.X2), float32(s.Y2))
		r.lines = append(r.lines, line)
	}
	r.updateMarker()
	r.Refresh()
}

func (r *RimRenderer) updateMarker() {
	r.marker = nil
	if r.selected < 0 || r.selected >= len(r.rims) {
		return
	}
	x, y, z := r.camera.Project(r.rims[r.selected].Circle.Center, r.width, r.height)
	if z <= 0 {
		return
	}
	marker := canvas.NewCircle(color.Transparent)
	marker.StrokeColor = color.White
	marker.StrokeWidth = 2
	size := float32(10)
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	r.marker = marker
}

// Dragged orbits the camera
func (r *RimRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	pos := event.Position
	r.dragStart = &pos
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *RimRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Scrolled zooms
func (r *RimRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	r.Render(r.width, r.height)
}

// Tapped selects the rim nearest to the pointer
func (r *RimRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}
	idx := NearestRim(r.camera, r.rims, r.width, r.height,
		float64(event.Position.X), float64(event.Position.Y), pickRadius)
	if idx < 0 {
		return
	}
	r.selected = idx
	r.Render(r.width, r.height)
	if r.onRimSelect != nil {
		r.onRimSelect(r.rims[idx])
	}
}

// Selected returns the picked rim
func (r *RimRenderer) Selected() (rim.Rim, bool) {
	if r.selected < 0 || r.selected >= len(r.rims) {
		return rim.Rim{}, false
	}
	return r.rims[r.selected], true
}

// ClearSelection removes the highlight
func (r *RimRenderer) ClearSelection() {
	r.selected = -1
	r.Render(r.width, r.height)
}

// ResetView restores the initial camera
func (r *RimRenderer) ResetView() {
	r.camera = NewCamera(r.set.BoundingBox())
	r.Render(r.width, r.height)
}

type rimWidgetRenderer struct {
	renderer *RimRenderer
	objects  []fyne.CanvasObject
}

func (m *rimWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *rimWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *rimWidgetRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0, len(m.renderer.lines)+1)
	for _, line := range m.renderer.lines {
		m.objects = append(m.objects, line)
	}
	if m.renderer.marker != nil {
		m.objects = append(m.objects, m.renderer.marker)
	}
	canvas.Refresh(m.renderer)
}

func (m *rimWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *rimWidgetRenderer) Destroy() {}

var _ fyne.Widget = (*RimRenderer)(nil)
var _ fyne.Draggable = (*RimRenderer)(nil)
var _ fyne.Scrollable = (*RimRenderer)(nil)
var _ fyne.Tappable = (*RimRenderer)(nil)
