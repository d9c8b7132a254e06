package sphere

import (
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
)

// goldenAngle is π(3-√5), the azimuth increment of the spiral lattice.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// SurfacePoint is a sample on a sphere surface with its outward unit normal
type SurfacePoint struct {
	Position geometry.Vector3
	Normal   geometry.Vector3
}

// Sample distributes s.Points points quasi-uniformly over the surface
// using a golden-angle spiral.
func Sample(s Sphere) []SurfacePoint {
	n := s.Points
	points := make([]SurfacePoint, 0, n)
	for i := 0; i < n; i++ {
		y := 1 - (float64(i)+0.5)*2/float64(n)
		ring := math.Sqrt(1 - y*y)
		phi := goldenAngle * float64(i)

		normal := geometry.NewVector3(math.Cos(phi)*ring, y, math.Sin(phi)*ring)
		points = append(points, SurfacePoint{
			Position: s.Center.Add(normal.Mul(s.Radius)),
			Normal:   normal,
		})
	}
	return points
}

// Visible samples every sphere of the set and drops the points lying
// strictly inside any other sphere. The result is indexed like set.Spheres.
func Visible(set *Set) [][]SurfacePoint {
	visible := make([][]SurfacePoint, len(set.Spheres))
	for i, s := range set.Spheres {
		samples := Sample(s)
		kept := samples[:0]
		for _, p := range samples {
			inside := false
			for j, other := range set.Spheres {
				if j != i && other.Contains(p.Position) {
					inside = true
					break
				}
			}
			if !inside {
				kept = append(kept, p)
			}
		}
		visible[i] = kept
	}
	return visible
}
