// Package rim computes the visible rims of a set of overlapping spheres.
//
// Every pair of intersecting spheres meets in an edge circle. The circle is
// clipped against every other sphere of the set by subtracting angular arcs,
// and whatever remains is emitted as polylines.
package rim

import (
	"fmt"
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/sphere"
)

type clipState int

const (
	stateFull clipState = iota
	stateArcs
	stateEmpty
)

// EdgeCircle is the intersection circle of two spheres together with the
// part of it that survives clipping. A fresh circle is full; Clip narrows it
// down to a list of arcs and eventually to nothing.
type EdgeCircle struct {
	Center geometry.Vector3
	Frame  geometry.Frame
	Radius float64

	state clipState
	arcs  []Arc
}

// Intersect returns the edge circle of two spheres, or nil when they do not
// intersect in a circle (disjoint, touching or nested).
func Intersect(sp1, sp2 sphere.Sphere) (*EdgeCircle, error) {
	d := sp1.Center.Distance(sp2.Center)
	if d == 0 {
		return nil, fmt.Errorf("%w: coincident centers at %v", ErrDegenerateInput, sp1.Center)
	}

	ov, ok := ClassifyCircles(d, sp1.Radius, sp2.Radius).(Overlap)
	if !ok || ov.Radius <= 0 {
		return nil, nil
	}

	frame, err := geometry.NewFrame(sp2.Center.Sub(sp1.Center))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}

	return &EdgeCircle{
		Center: sp1.Center.Add(frame.Normal.Mul(ov.Offset)),
		Frame:  frame,
		Radius: ov.Radius,
	}, nil
}

// IsFull reports whether no part of the circle has been clipped yet.
func (c *EdgeCircle) IsFull() bool {
	return c.state == stateFull
}

// IsEmpty reports whether the circle has been clipped away completely.
func (c *EdgeCircle) IsEmpty() bool {
	return c.state == stateEmpty || (c.state == stateArcs && len(c.arcs) == 0)
}

// Arcs returns a copy of the surviving arcs. It is nil for full and empty
// circles.
func (c *EdgeCircle) Arcs() []Arc {
	if c.state != stateArcs || len(c.arcs) == 0 {
		return nil
	}
	out := make([]Arc, len(c.arcs))
	copy(out, c.arcs)
	return out
}

// AngularMeasure is the total angle covered by the surviving part.
func (c *EdgeCircle) AngularMeasure() float64 {
	switch c.state {
	case stateFull:
		return twoPi
	case stateEmpty:
		return 0
	}
	var sum float64
	for _, a := range c.arcs {
		sum += a.Span()
	}
	return sum
}

// Circle returns the full geometric circle, ignoring clipping.
func (c *EdgeCircle) Circle() geometry.Circle {
	return geometry.Circle{Center: c.Center, Radius: c.Radius, Frame: c.Frame}
}

// Point returns the point at the given angle on the circle.
func (c *EdgeCircle) Point(angle float64) geometry.Vector3 {
	return c.Frame.PointOnCircle(c.Center, c.Radius, angle)
}

// Clip removes the part of the circle that lies inside other. Points on the
// sphere surface count as inside.
func (c *EdgeCircle) Clip(other sphere.Sphere) error {
	if c.IsEmpty() {
		return nil
	}

	local := c.Frame.ToLocal(other.Center.Sub(c.Center))
	distToPlane := math.Abs(local.X)
	if other.Radius <= distToPlane {
		return nil
	}

	projRadius := math.Sqrt(other.Radius*other.Radius - distToPlane*distToPlane)
	projDist := math.Hypot(local.Y, local.Z)

	switch ov := ClassifyCircles(projDist, c.Radius, projRadius).(type) {
	case NoOverlap:
		return nil
	case FullCoverage:
		if c.Radius <= projRadius {
			c.state = stateEmpty
			c.arcs = nil
		}
		return nil
	case Overlap:
		// grazing contact rounds to a zero-width chord
		if ov.Radius <= 0 {
			return nil
		}
		mid := math.Atan2(local.Z, local.Y)
		half := math.Acos(ov.Offset / c.Radius)
		if math.IsNaN(half) || half <= 0 {
			return nil
		}
		removal, err := NewArc(mid-half, mid+half)
		if err != nil {
			return fmt.Errorf("clip against %v: %w", other, err)
		}
		return c.remove(removal)
	}
	return nil
}

func (c *EdgeCircle) remove(removal Arc) error {
	if removal.Span() >= twoPi {
		c.state = stateEmpty
		c.arcs = nil
		return nil
	}
	if c.state == stateFull {
		start := removal.Max
		// keep the window start in [-π, π)
		start -= twoPi * math.Floor((start+math.Pi)/twoPi)
		first, err := NewArc(start, start+twoPi-removal.Span())
		if err != nil {
			return fmt.Errorf("complement of %v: %w", removal, err)
		}
		c.state = stateArcs
		c.arcs = []Arc{first}
		return nil
	}

	next := make([]Arc, 0, len(c.arcs)+1)
	for _, a := range c.arcs {
		switch r := Subtract(a, removal).(type) {
		case RemoveArc:
		case ChangeNothing:
			next = append(next, a)
		case Replace:
			next = append(next, r.Arc)
		case Split:
			next = append(next, r.Low, r.High)
		}
	}

	if len(next) == 0 {
		c.state = stateEmpty
		c.arcs = nil
		return nil
	}
	c.arcs = next
	return nil
}

func (c *EdgeCircle) String() string {
	switch {
	case c.IsFull():
		return fmt.Sprintf("EdgeCircle{center=%v radius=%g full}", c.Center, c.Radius)
	case c.IsEmpty():
		return fmt.Sprintf("EdgeCircle{center=%v radius=%g empty}", c.Center, c.Radius)
	}
	return fmt.Sprintf("EdgeCircle{center=%v radius=%g arcs=%v}", c.Center, c.Radius, c.arcs)
}
