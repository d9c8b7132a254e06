package rim

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func requireArc(t *testing.T, want, got Arc) {
	t.Helper()
	assert.InDelta(t, want.Min, got.Min, eps, "min")
	assert.InDelta(t, want.Max, got.Max, eps, "max")
}

func TestNewArc(t *testing.T) {
	a, err := NewArc(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, Arc{Min: -1, Max: 2}, a)
	assert.Equal(t, 3.0, a.Span())

	for _, bad := range [][2]float64{
		{1, 1},
		{2, 1},
		{math.NaN(), 1},
		{0, math.NaN()},
		{math.Inf(-1), 0},
		{0, math.Inf(1)},
	} {
		_, err := NewArc(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrInvalidArc, "%v", bad)
	}
}

func TestSubtractShapes(t *testing.T) {
	base := Arc{Min: 1, Max: 3}

	assert.Equal(t, RemoveArc{}, Subtract(base, Arc{Min: 0, Max: 4}))
	assert.Equal(t, RemoveArc{}, Subtract(base, Arc{Min: 1, Max: 3}))

	assert.Equal(t, Replace{Arc{Min: 2, Max: 3}}, Subtract(base, Arc{Min: 0, Max: 2}))
	assert.Equal(t, Replace{Arc{Min: 2, Max: 3}}, Subtract(base, Arc{Min: 1, Max: 2}))

	assert.Equal(t, Replace{Arc{Min: 1, Max: 2}}, Subtract(base, Arc{Min: 2, Max: 4}))
	assert.Equal(t, Replace{Arc{Min: 1, Max: 2}}, Subtract(base, Arc{Min: 2, Max: 3}))

	assert.Equal(t, Split{Low: Arc{Min: 1, Max: 1.5}, High: Arc{Min: 2.5, Max: 3}},
		Subtract(base, Arc{Min: 1.5, Max: 2.5}))

	assert.Equal(t, ChangeNothing{}, Subtract(base, Arc{Min: 3.5, Max: 4}))
	assert.Equal(t, ChangeNothing{}, Subtract(base, Arc{Min: 3, Max: 4}))
	assert.Equal(t, ChangeNothing{}, Subtract(base, Arc{Min: 0, Max: 1}))
}

func TestSubtractTrimLowEnd(t *testing.T) {
	got := Subtract(Arc{Min: math.Pi / 2, Max: 3 * math.Pi / 2}, Arc{Min: 0, Max: math.Pi})
	r, ok := got.(Replace)
	require.True(t, ok, "got %#v", got)
	requireArc(t, Arc{Min: math.Pi, Max: 3 * math.Pi / 2}, r.Arc)
}

func TestSubtractWraparoundShift(t *testing.T) {
	// complement of [π/2, π] over one turn
	base := Arc{Min: math.Pi, Max: 5 * math.Pi / 2}

	got := Subtract(base, Arc{Min: -math.Pi / 4, Max: math.Pi / 4})
	s, ok := got.(Split)
	require.True(t, ok, "got %#v", got)
	requireArc(t, Arc{Min: math.Pi, Max: 7 * math.Pi / 4}, s.Low)
	requireArc(t, Arc{Min: 9 * math.Pi / 4, Max: 5 * math.Pi / 2}, s.High)

	// same removal two turns lower
	got = Subtract(base, Arc{Min: -math.Pi/4 - 2*twoPi, Max: math.Pi/4 - 2*twoPi})
	s, ok = got.(Split)
	require.True(t, ok, "got %#v", got)
	requireArc(t, Arc{Min: math.Pi, Max: 7 * math.Pi / 4}, s.Low)

	// shifting down from above
	got = Subtract(base, Arc{Min: 2*math.Pi + 2*twoPi, Max: 3*math.Pi + 2*twoPi})
	r, ok := got.(Replace)
	require.True(t, ok, "got %#v", got)
	requireArc(t, Arc{Min: math.Pi, Max: 2 * math.Pi}, r.Arc)
}

func TestSubtractShiftStillDisjoint(t *testing.T) {
	base := Arc{Min: 0, Max: 1}
	assert.Equal(t, ChangeNothing{}, Subtract(base, Arc{Min: 1.2 - twoPi, Max: 1.5 - twoPi}))
	assert.Equal(t, ChangeNothing{}, Subtract(base, Arc{Min: 1.2 + twoPi, Max: 1.5 + twoPi}))
}

func TestSubtractBothEndsWrapped(t *testing.T) {
	base := Arc{Min: 0.1, Max: 6.2}

	got := Subtract(base, Arc{Min: -0.2, Max: 0.3})
	r, ok := got.(Replace)
	require.True(t, ok, "got %#v", got)
	requireArc(t, Arc{Min: 0.3, Max: twoPi - 0.2}, r.Arc)

	got = Subtract(base, Arc{Min: 6.0, Max: 6.5})
	r, ok = got.(Replace)
	require.True(t, ok, "got %#v", got)
	requireArc(t, Arc{Min: 6.5 - twoPi, Max: 6.0}, r.Arc)
}

func TestSubtractFullTurnRemoves(t *testing.T) {
	assert.Equal(t, RemoveArc{}, Subtract(Arc{Min: 1, Max: 2}, Arc{Min: 5, Max: 5 + twoPi}))
}

func TestSubtractInvalidInput(t *testing.T) {
	assert.Equal(t, ChangeNothing{}, Subtract(Arc{Min: 2, Max: 1}, Arc{Min: 0, Max: 3}))
	assert.Equal(t, ChangeNothing{}, Subtract(Arc{Min: 0, Max: 1}, Arc{Min: math.Inf(-1), Max: 0}))
	assert.Equal(t, ChangeNothing{}, Subtract(Arc{Min: 0, Max: 1}, Arc{Min: math.NaN(), Max: 0}))
}

func TestSubtractResultsStayInsideBase(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		bMin := rng.Float64()*4*math.Pi - 2*math.Pi
		base := Arc{Min: bMin, Max: bMin + 0.01 + rng.Float64()*(twoPi-0.02)}
		oMin := rng.Float64()*8*math.Pi - 4*math.Pi
		other := Arc{Min: oMin, Max: oMin + 0.01 + rng.Float64()*(math.Pi-0.02)}

		var parts []Arc
		switch r := Subtract(base, other).(type) {
		case RemoveArc:
		case ChangeNothing:
			parts = []Arc{base}
		case Replace:
			parts = []Arc{r.Arc}
		case Split:
			parts = []Arc{r.Low, r.High}
			assert.Less(t, r.Low.Max, r.High.Min)
		default:
			t.Fatalf("unexpected result %#v", r)
		}

		for _, p := range parts {
			require.True(t, p.valid(), "base=%v other=%v part=%v", base, other, p)
			assert.GreaterOrEqual(t, p.Min, base.Min)
			assert.LessOrEqual(t, p.Max, base.Max)
			// no surviving midpoint may lie inside any turn of other
			mid := (p.Min + p.Max) / 2
			off := math.Mod(mid-other.Min, twoPi)
			if off < 0 {
				off += twoPi
			}
			assert.Greater(t, off, other.Span()-1e-9, "base=%v other=%v part=%v", base, other, p)
		}
	}
}
