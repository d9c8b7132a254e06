package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
)

// RimInfo summarizes one clipped edge circle
type RimInfo struct {
	I, J           int
	Center         geometry.Vector3
	Radius         float64
	Arcs           int
	AngularMeasure float64
	// Length is the arc length of the surviving part.
	Length float64
	Full   bool
	Empty  bool
}

// Stats describes the rims of a sphere set
type Stats struct {
	Spheres      int
	Pairs        int
	Intersecting int
	FullCircles  int
	Partial      int
	Eliminated   int
	Skipped      int
	Arcs         int
	Polylines    int
	Points       int
	TotalAngle   float64
	TotalLength  float64
	MinRadius    float64
	MaxRadius    float64
	BoundingBox  geometry.BoundingBox
	Rims         []RimInfo
}

// Analyze collects rim statistics from a computed result
func Analyze(set *sphere.Set, res *rim.Result) *Stats {
	stats := &Stats{
		Spheres:     len(set.Spheres),
		Pairs:       res.Pairs,
		Skipped:     len(res.Skipped),
		Rims:        make([]RimInfo, 0, len(res.Rims)),
		BoundingBox: set.BoundingBox(),
	}

	minRadius := math.MaxFloat64
	for _, r := range res.Rims {
		c := r.Circle
		info := RimInfo{
			I:              r.I,
			J:              r.J,
			Center:         c.Center,
			Radius:         c.Radius,
			Arcs:           len(c.Arcs()),
			AngularMeasure: c.AngularMeasure(),
			Full:           c.IsFull(),
			Empty:          c.IsEmpty(),
		}
		info.Length = info.AngularMeasure * c.Radius
		stats.Rims = append(stats.Rims, info)

		stats.Intersecting++
		switch {
		case info.Full:
			stats.FullCircles++
		case info.Empty:
			stats.Eliminated++
		default:
			stats.Partial++
		}
		stats.Arcs += info.Arcs
		stats.TotalAngle += info.AngularMeasure
		stats.TotalLength += info.Length
		stats.Polylines += len(r.Polylines)
		for _, l := range r.Polylines {
			stats.Points += len(l.Points)
		}

		if c.Radius < minRadius {
			minRadius = c.Radius
		}
		if c.Radius > stats.MaxRadius {
			stats.MaxRadius = c.Radius
		}
	}
	if stats.Intersecting > 0 {
		stats.MinRadius = minRadius
	}
	return stats
}

// LongestRims returns the count rims with the largest visible length
func LongestRims(stats *Stats, count int) []RimInfo {
	rims := make([]RimInfo, len(stats.Rims))
	copy(rims, stats.Rims)

	sort.SliceStable(rims, func(i, j int) bool {
		return rims[i].Length > rims[j].Length
	})

	if count > len(rims) {
		count = len(rims)
	}
	return rims[:count]
}

// FindRimsByLength returns the rims whose visible length is within [minLength, maxLength]
func FindRimsByLength(stats *Stats, minLength, maxLength float64) []RimInfo {
	var rims []RimInfo
	for _, r := range stats.Rims {
		if r.Length >= minLength && r.Length <= maxLength {
			rims = append(rims, r)
		}
	}
	return rims
}

// FormatMeasurement formats a value with its unit
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatAngle formats radians as degrees
func FormatAngle(rad float64) string {
	return fmt.Sprintf("%.2f°", rad*180/math.Pi)
}
