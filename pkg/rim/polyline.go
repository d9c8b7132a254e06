package rim

import (
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
)

// DefaultSegments is the number of segments used for a full turn.
const DefaultSegments = 32

const minSegments = 3

// Polyline is an ordered list of points. A closed polyline connects its last
// point back to the first.
type Polyline struct {
	Points []geometry.Vector3
	Closed bool
}

// Emit samples the surviving part of c. A full circle becomes one closed
// polyline of segmentsPerTurn points; every arc becomes an open polyline of
// ceil(segmentsPerTurn*span/2π)+1 points including both endpoints. An empty
// circle yields nothing.
func Emit(c *EdgeCircle, segmentsPerTurn int) []Polyline {
	if c == nil || c.IsEmpty() {
		return nil
	}
	if segmentsPerTurn < minSegments {
		segmentsPerTurn = minSegments
	}

	if c.IsFull() {
		points := make([]geometry.Vector3, segmentsPerTurn)
		for i := range points {
			points[i] = c.Point(twoPi * float64(i) / float64(segmentsPerTurn))
		}
		return []Polyline{{Points: points, Closed: true}}
	}

	lines := make([]Polyline, 0, len(c.arcs))
	for _, a := range c.arcs {
		segments := int(math.Ceil(float64(segmentsPerTurn) * a.Span() / twoPi))
		if segments < 1 {
			segments = 1
		}
		points := make([]geometry.Vector3, segments+1)
		for i := range points {
			points[i] = c.Point(a.Min + a.Span()*float64(i)/float64(segments))
		}
		lines = append(lines, Polyline{Points: points})
	}
	return lines
}

// Length is the summed length of all segments, including the closing one.
func (p Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(p.Points); i++ {
		l += p.Points[i].Distance(p.Points[i-1])
	}
	if p.Closed && len(p.Points) > 2 {
		l += p.Points[0].Distance(p.Points[len(p.Points)-1])
	}
	return l
}
