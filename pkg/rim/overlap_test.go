package rim

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCircles(t *testing.T) {
	assert.Equal(t, NoOverlap{}, ClassifyCircles(11, 5, 5))
	assert.Equal(t, NoOverlap{}, ClassifyCircles(10, 5, 5), "external tangency")

	assert.Equal(t, FullCoverage{FirstCoversSecond: true}, ClassifyCircles(1, 10, 5))
	assert.Equal(t, FullCoverage{FirstCoversSecond: false}, ClassifyCircles(1, 5, 10))
	assert.Equal(t, FullCoverage{FirstCoversSecond: true}, ClassifyCircles(5, 10, 5), "internal tangency")
	assert.Equal(t, FullCoverage{FirstCoversSecond: true}, ClassifyCircles(0, 3, 3))

	got := ClassifyCircles(8, 5, 5)
	ov, ok := got.(Overlap)
	require.True(t, ok, "got %#v", got)
	assert.InDelta(t, 3, ov.Radius, 1e-12)
	assert.InDelta(t, 4, ov.Offset, 1e-12)
}

func TestClassifyCirclesChordBehindFirstCenter(t *testing.T) {
	got := ClassifyCircles(8, 5, 10)
	ov, ok := got.(Overlap)
	require.True(t, ok, "got %#v", got)
	assert.Less(t, ov.Offset, 0.0)

	// chord point (offset, radius) lies on both circles
	assert.InDelta(t, 25, ov.Offset*ov.Offset+ov.Radius*ov.Radius, 1e-9)
	assert.InDelta(t, 100, (8-ov.Offset)*(8-ov.Offset)+ov.Radius*ov.Radius, 1e-9)
}

func TestClassifyCirclesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 10000; i++ {
		d := rng.Float64() * 20
		r1 := 0.01 + rng.Float64()*10
		r2 := 0.01 + rng.Float64()*10

		switch ov := ClassifyCircles(d, r1, r2).(type) {
		case NoOverlap:
			assert.GreaterOrEqual(t, d, r1+r2)
		case FullCoverage:
			assert.LessOrEqual(t, d, math.Abs(r1-r2))
			assert.Equal(t, r1 >= r2, ov.FirstCoversSecond)
		case Overlap:
			assert.Less(t, d, r1+r2)
			assert.Greater(t, d, math.Abs(r1-r2))
			assert.False(t, math.IsNaN(ov.Radius) || math.IsNaN(ov.Offset))
			assert.LessOrEqual(t, ov.Radius, math.Min(r1, r2)+1e-9)
			assert.InDelta(t, r1*r1, ov.Offset*ov.Offset+ov.Radius*ov.Radius, 1e-6*r1*r1)
		default:
			t.Fatalf("unclassified input d=%v r1=%v r2=%v", d, r1, r2)
		}
	}
}
