package rim

import "math"

// CircleOverlap classifies how two circles (or spheres) a given distance
// apart relate. It is one of NoOverlap, FullCoverage or Overlap.
type CircleOverlap interface {
	isCircleOverlap()
}

// NoOverlap means the circles are disjoint or touch externally.
type NoOverlap struct{}

// FullCoverage means one circle contains the other.
type FullCoverage struct {
	// FirstCoversSecond is true when r1 >= r2.
	FirstCoversSecond bool
}

// Overlap describes the chord shared by two intersecting circles.
type Overlap struct {
	// Radius is the half length of the common chord.
	Radius float64
	// Offset is the signed distance from the first center to the chord
	// along the center line.
	Offset float64
}

func (NoOverlap) isCircleOverlap()    {}
func (FullCoverage) isCircleOverlap() {}
func (Overlap) isCircleOverlap()      {}

// ClassifyCircles relates a circle of radius r1 to one of radius r2 whose
// center lies distance away. Touching counts as NoOverlap, internal tangency
// as FullCoverage.
func ClassifyCircles(distance, r1, r2 float64) CircleOverlap {
	if distance >= r1+r2 {
		return NoOverlap{}
	}
	if distance <= math.Abs(r1-r2) {
		return FullCoverage{FirstCoversSecond: r1 >= r2}
	}

	// distance > 0 from here on
	t := (distance*distance + r2*r2 - r1*r1) / (2 * distance)
	x := math.Sqrt(math.Max(0, r2*r2-t*t))
	d1 := math.Sqrt(math.Max(0, r1*r1-x*x))
	d2 := math.Sqrt(math.Max(0, r2*r2-x*x))

	offset := d1
	if distance < d2 && d1 < d2 {
		// the chord lies behind the first center
		offset = distance - d2
	}
	return Overlap{Radius: x, Offset: offset}
}
