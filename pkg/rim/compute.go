package rim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/philipparndt/gorim/pkg/sphere"
	"golang.org/x/sync/errgroup"
)

// Options controls Compute.
type Options struct {
	// SegmentsPerTurn is the sampling density of emitted polylines.
	// Zero selects DefaultSegments.
	SegmentsPerTurn int
	// Workers bounds the number of pairs processed concurrently.
	// Zero selects runtime.NumCPU().
	Workers int
}

func (o Options) withDefaults() Options {
	if o.SegmentsPerTurn <= 0 {
		o.SegmentsPerTurn = DefaultSegments
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// Rim is the clipped edge circle of spheres I and J (I < J).
type Rim struct {
	I, J      int
	Circle    *EdgeCircle
	Polylines []Polyline
}

// SkippedPair records a pair whose rim could not be computed.
type SkippedPair struct {
	I, J int
	Err  error
}

func (s SkippedPair) Error() string {
	return fmt.Sprintf("pair (%d, %d): %v", s.I, s.J, s.Err)
}

func (s SkippedPair) Unwrap() error {
	return s.Err
}

// Result holds the rims of every intersecting pair, sorted by (I, J).
type Result struct {
	Rims    []Rim
	Skipped []SkippedPair
	// Pairs is the number of pairs examined.
	Pairs int
}

// Polylines returns all emitted polylines in rim order.
func (r *Result) Polylines() []Polyline {
	var out []Polyline
	for _, rim := range r.Rims {
		out = append(out, rim.Polylines...)
	}
	return out
}

// ComputePair intersects spheres i and j and clips the circle against every
// other sphere. A nil circle means the pair has no rim.
func ComputePair(spheres []sphere.Sphere, i, j int) (*EdgeCircle, error) {
	c, err := Intersect(spheres[i], spheres[j])
	if err != nil || c == nil {
		return nil, err
	}
	for k := range spheres {
		if k == i || k == j {
			continue
		}
		if err := c.Clip(spheres[k]); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", k, err)
		}
		if c.IsEmpty() {
			break
		}
	}
	return c, nil
}

type pairOutcome struct {
	circle *EdgeCircle
	err    error
}

// Compute processes every unordered pair of spheres. Pairs run concurrently
// on up to opts.Workers goroutines, each owning its own circle. A failing
// pair is reported in Result.Skipped without affecting the others; only
// cancellation of ctx aborts the run.
func Compute(ctx context.Context, spheres []sphere.Sphere, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	type pair struct{ i, j int }
	var pairs []pair
	for i := range spheres {
		for j := i + 1; j < len(spheres); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	outcomes := make([]pairOutcome, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for idx, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := ComputePair(spheres, p.i, p.j)
			outcomes[idx] = pairOutcome{circle: c, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Pairs: len(pairs)}
	for idx, p := range pairs {
		o := outcomes[idx]
		switch {
		case o.err != nil:
			res.Skipped = append(res.Skipped, SkippedPair{I: p.i, J: p.j, Err: o.err})
		case o.circle != nil:
			res.Rims = append(res.Rims, Rim{
				I:         p.i,
				J:         p.j,
				Circle:    o.circle,
				Polylines: Emit(o.circle, opts.SegmentsPerTurn),
			})
		}
	}
	return res, nil
}
