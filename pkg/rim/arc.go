package rim

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Arc is a closed angular interval [Min, Max] on an edge circle, measured
// with atan2(z, y) in the circle's frame. Min < Max always holds; the
// values are not reduced modulo 2π.
type Arc struct {
	Min, Max float64
}

// NewArc builds an arc, rejecting empty, inverted and non-finite intervals
func NewArc(min, max float64) (Arc, error) {
	a := Arc{Min: min, Max: max}
	if !a.valid() {
		return Arc{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidArc, min, max)
	}
	return a, nil
}

func (a Arc) valid() bool {
	return !math.IsNaN(a.Min) && !math.IsNaN(a.Max) &&
		!math.IsInf(a.Min, 0) && !math.IsInf(a.Max, 0) &&
		a.Min < a.Max
}

// Span returns Max - Min
func (a Arc) Span() float64 {
	return a.Max - a.Min
}

func (a Arc) shift(turns float64) Arc {
	return Arc{Min: a.Min + turns*twoPi, Max: a.Max + turns*twoPi}
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc[%g, %g]", a.Min, a.Max)
}

// ArcSubtraction is the outcome of Subtract. It is one of RemoveArc,
// ChangeNothing, Replace or Split.
type ArcSubtraction interface {
	isArcSubtraction()
}

// RemoveArc means the subtracted interval covers the whole base arc.
type RemoveArc struct{}

// ChangeNothing means the intervals do not overlap.
type ChangeNothing struct{}

// Replace means one end of the base arc was trimmed.
type Replace struct {
	Arc Arc
}

// Split means the subtracted interval lies strictly inside the base arc.
type Split struct {
	Low, High Arc
}

func (RemoveArc) isArcSubtraction()     {}
func (ChangeNothing) isArcSubtraction() {}
func (Replace) isArcSubtraction()       {}
func (Split) isArcSubtraction()         {}

// Subtract removes other from base, treating both as intervals modulo 2π.
// Boundary equality counts as coverage, so zero-width remainders are never
// produced. Invalid input yields ChangeNothing; Clip validates both arcs
// before calling, so that branch is only reachable by direct callers that
// must check their arcs with NewArc first.
func Subtract(base, other Arc) ArcSubtraction {
	if !base.valid() || !other.valid() {
		return ChangeNothing{}
	}
	if other.Span() >= twoPi {
		return RemoveArc{}
	}

	switch {
	case other.Max <= base.Min:
		other = shiftAbove(other, base.Min)
		if base.Max <= other.Min {
			return ChangeNothing{}
		}
	case base.Max <= other.Min:
		other = shiftBelow(other, base.Max)
		if other.Max <= base.Min {
			return ChangeNothing{}
		}
	}
	// base.Min < other.Max && other.Min < base.Max

	if other.Min <= base.Min {
		if base.Max <= other.Max {
			return RemoveArc{}
		}
		if other.Min+twoPi < base.Max {
			// the next turn of other trims the high end as well
			return Replace{Arc{Min: other.Max, Max: other.Min + twoPi}}
		}
		return Replace{Arc{Min: other.Max, Max: base.Max}}
	}

	if base.Max <= other.Max {
		if base.Min < other.Max-twoPi {
			// the previous turn of other trims the low end as well
			return Replace{Arc{Min: other.Max - twoPi, Max: other.Min}}
		}
		return Replace{Arc{Min: base.Min, Max: other.Min}}
	}

	return Split{
		Low:  Arc{Min: base.Min, Max: other.Min},
		High: Arc{Min: other.Max, Max: base.Max},
	}
}

// shiftAbove moves a by whole turns to the first position with a.Max > bound.
func shiftAbove(a Arc, bound float64) Arc {
	a = a.shift(math.Floor((bound-a.Max)/twoPi) + 1)
	// rounding repair; a handful of steps is always enough for finite input
	for i := 0; i < 4 && a.Max <= bound; i++ {
		a = a.shift(1)
	}
	for i := 0; i < 4 && a.Max-twoPi > bound; i++ {
		a = a.shift(-1)
	}
	return a
}

// shiftBelow moves a by whole turns to the first position with a.Min < bound.
func shiftBelow(a Arc, bound float64) Arc {
	a = a.shift(-(math.Floor((a.Min-bound)/twoPi) + 1))
	for i := 0; i < 4 && a.Min >= bound; i++ {
		a = a.shift(-1)
	}
	for i := 0; i < 4 && a.Min+twoPi < bound; i++ {
		a = a.shift(1)
	}
	return a
}
