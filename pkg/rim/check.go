package rim

import (
	"fmt"
	"math"

	"github.com/philipparndt/gorim/pkg/sphere"
)

// CheckOnSpheres samples c at the given angles and verifies every point lies
// on both spheres within tol, relative to each radius.
func CheckOnSpheres(c *EdgeCircle, sp1, sp2 sphere.Sphere, angles []float64, tol float64) error {
	for _, angle := range angles {
		p := c.Point(angle)
		for n, s := range []sphere.Sphere{sp1, sp2} {
			dist := p.Distance(s.Center)
			if math.Abs(dist-s.Radius) > tol*s.Radius {
				return fmt.Errorf("%w: angle %.4f is %g from center of sphere %d (radius %g)",
					ErrOffSphere, angle, dist, n+1, s.Radius)
			}
		}
	}
	return nil
}

// CheckAngles returns n angles spread evenly over the surviving part of c.
func CheckAngles(c *EdgeCircle, n int) []float64 {
	if c.IsEmpty() || n <= 0 {
		return nil
	}
	if c.IsFull() {
		out := make([]float64, n)
		for i := range out {
			out[i] = twoPi * float64(i) / float64(n)
		}
		return out
	}
	var out []float64
	for _, a := range c.arcs {
		for i := 0; i < n; i++ {
			out = append(out, a.Min+a.Span()*float64(i)/float64(n))
		}
	}
	return out
}
