package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/philipparndt/gorim/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compute(t *testing.T, set *sphere.Set) *rim.Result {
	t.Helper()
	res, err := rim.Compute(context.Background(), set.Spheres, rim.Options{SegmentsPerTurn: 16})
	require.NoError(t, err)
	return res
}

func TestAnalyzeTetrahedron(t *testing.T) {
	set := sphere.Tetrahedron(100, 57.9)
	stats := Analyze(set, compute(t, set))

	assert.Equal(t, 4, stats.Spheres)
	assert.Equal(t, 6, stats.Pairs)
	assert.Equal(t, 6, stats.Intersecting)
	assert.Equal(t, 6, stats.Partial)
	assert.Zero(t, stats.FullCircles)
	assert.Zero(t, stats.Eliminated)
	assert.Equal(t, 12, stats.Arcs)
	assert.Equal(t, 12, stats.Polylines)
	assert.Less(t, stats.TotalAngle, 6*2*math.Pi)

	// all rims are congruent
	assert.InDelta(t, stats.MinRadius, stats.MaxRadius, 1e-9)
	want := math.Sqrt(57.9*57.9 - 50*50)
	assert.InDelta(t, want, stats.MaxRadius, 1e-9)
	for _, r := range stats.Rims {
		assert.InDelta(t, r.AngularMeasure*r.Radius, r.Length, 1e-9)
	}
}

func TestAnalyzeCoveredRim(t *testing.T) {
	set := &sphere.Set{Spheres: []sphere.Sphere{
		{Center: geometry.NewVector3(0, 0, 0), Radius: 5},
		{Center: geometry.NewVector3(8, 0, 0), Radius: 5},
		{Center: geometry.NewVector3(4, 0, 0), Radius: 4},
	}}
	stats := Analyze(set, compute(t, set))

	assert.Equal(t, 3, stats.Intersecting)
	assert.Equal(t, 1, stats.Eliminated)
	assert.Equal(t, 2, stats.Partial+stats.FullCircles)
	assert.Zero(t, stats.Skipped)
}

func TestAnalyzeEmpty(t *testing.T) {
	set := &sphere.Set{}
	stats := Analyze(set, compute(t, set))
	assert.Zero(t, stats.Intersecting)
	assert.Zero(t, stats.MinRadius)
	assert.Empty(t, LongestRims(stats, 3))
}

func TestLongestAndByLength(t *testing.T) {
	stats := &Stats{Rims: []RimInfo{{I: 0, Length: 1}, {I: 1, Length: 5}, {I: 2, Length: 3}}}

	longest := LongestRims(stats, 2)
	require.Len(t, longest, 2)
	assert.Equal(t, 1, longest[0].I)
	assert.Equal(t, 2, longest[1].I)
	assert.Equal(t, 0, stats.Rims[0].I, "input order untouched")

	found := FindRimsByLength(stats, 2, 4)
	require.Len(t, found, 1)
	assert.Equal(t, 2, found[0].I)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "(1.000000, 2.500000, -3.000000)", FormatVector(geometry.NewVector3(1, 2.5, -3)))
	assert.Equal(t, "2.000000 mm", FormatMeasurement(2, "mm"))
	assert.Equal(t, "2.000000 units", FormatMeasurement(2, ""))
	assert.Equal(t, "90.00°", FormatAngle(math.Pi/2))
}

func TestAnalyzeMesh(t *testing.T) {
	m := stl.NewModel("square")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(3, 0, 0)
	c := geometry.NewVector3(3, 4, 0)
	d := geometry.NewVector3(0, 4, 0)
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))

	stats := AnalyzeMesh(m)
	assert.Equal(t, 2, stats.TriangleCount)
	assert.Equal(t, 6, stats.EdgeCount)
	assert.InDelta(t, 12, stats.SurfaceArea, 1e-12)
	assert.InDelta(t, 3, stats.MinEdgeLength, 1e-12)
	assert.InDelta(t, 5, stats.MaxEdgeLength, 1e-12)
	assert.InDelta(t, 24.0/6, stats.AvgEdgeLength, 1e-12)
	assert.Equal(t, geometry.NewVector3(3, 4, 0), stats.Dimensions)
	assert.Zero(t, stats.Volume)
}
