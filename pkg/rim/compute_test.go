package rim

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTetrahedron(t *testing.T) {
	set := sphere.Tetrahedron(100, 57.9)
	res, err := Compute(context.Background(), set.Spheres, Options{})
	require.NoError(t, err)

	assert.Equal(t, 6, res.Pairs)
	assert.Empty(t, res.Skipped)
	require.Len(t, res.Rims, 6)

	for _, r := range res.Rims {
		assert.Less(t, r.I, r.J)
		assert.NotEmpty(t, r.Polylines)
		for _, line := range r.Polylines {
			assert.False(t, line.Closed)
		}
	}
	assert.Len(t, res.Polylines(), 12)
}

func TestComputeThirdSphereCoversRim(t *testing.T) {
	spheres := []sphere.Sphere{sp(0, 0, 0, 5), sp(8, 0, 0, 5), sp(4, 0, 0, 4)}
	res, err := Compute(context.Background(), spheres, Options{SegmentsPerTurn: 16, Workers: 2})
	require.NoError(t, err)

	for _, r := range res.Rims {
		if r.I == 0 && r.J == 1 {
			assert.True(t, r.Circle.IsEmpty())
			assert.Empty(t, r.Polylines)
		}
	}
}

func TestComputeSkipsDegeneratePairs(t *testing.T) {
	spheres := []sphere.Sphere{sp(0, 0, 0, 5), sp(0, 0, 0, 5), sp(8, 0, 0, 5), sp(30, 0, 0, 5)}
	res, err := Compute(context.Background(), spheres, Options{})
	require.NoError(t, err)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 0, res.Skipped[0].I)
	assert.Equal(t, 1, res.Skipped[0].J)
	assert.ErrorIs(t, res.Skipped[0], ErrDegenerateInput)

	// (0,2) and (1,2) still intersect; sphere 3 touches nothing
	require.Len(t, res.Rims, 2)
	assert.Equal(t, [2]int{0, 2}, [2]int{res.Rims[0].I, res.Rims[0].J})
	assert.Equal(t, [2]int{1, 2}, [2]int{res.Rims[1].I, res.Rims[1].J})
	assert.Equal(t, 6, res.Pairs)
}

func TestComputeDeterministic(t *testing.T) {
	set := sphere.Random(rand.New(rand.NewPCG(1, 1)), 20, 20, 50, geometry.NewVector3(200, 200, 100), 0)

	serial, err := Compute(context.Background(), set.Spheres, Options{Workers: 1})
	require.NoError(t, err)
	parallel, err := Compute(context.Background(), set.Spheres, Options{Workers: 8})
	require.NoError(t, err)

	require.Equal(t, len(serial.Rims), len(parallel.Rims))
	for k := range serial.Rims {
		a, b := serial.Rims[k], parallel.Rims[k]
		assert.Equal(t, a.I, b.I)
		assert.Equal(t, a.J, b.J)
		assert.Equal(t, a.Circle.Arcs(), b.Circle.Arcs())
		assert.Equal(t, a.Polylines, b.Polylines)
	}
	assert.Equal(t, serial.Skipped, parallel.Skipped)
}

func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set := sphere.Tetrahedron(100, 57.9)
	_, err := Compute(ctx, set.Spheres, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeTrivialInput(t *testing.T) {
	res, err := Compute(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Zero(t, res.Pairs)
	assert.Empty(t, res.Rims)

	res, err = Compute(context.Background(), []sphere.Sphere{sp(0, 0, 0, 1)}, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Rims)
}
