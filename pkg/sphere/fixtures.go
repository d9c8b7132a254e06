package sphere

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/philipparndt/gorim/pkg/geometry"
)

// PlanetRadius is the radius used by the large-scale fixtures.
const PlanetRadius = 50000

const defaultPoints = 4000

type fixture struct {
	description string
	build       func() *Set
}

var fixtures = map[string]fixture{
	"single": {
		description: "one planet-sized sphere, no rims",
		build: func() *Set {
			return &Set{Name: "Single Sphere", Spheres: []Sphere{
				{Center: geometry.NewVector3(PlanetRadius*1.6, 0, 0), Radius: PlanetRadius, Points: defaultPoints},
			}}
		},
	},
	"space-engineers": {
		description: "11 planet-sized scan spheres",
		build: func() *Set {
			centers := [][3]float64{
				{-374.04, 309.45, -450.11},
				{6067.64, 18269.06, 25806.78},
				{36924.51, 17250.54, 100.49},
				{31152.43, -14553.81, -27841.96},
				{-18964.20, -32550.94, -26076.28},
				{39803.03, 7282.90, 21970.95},
				{-30000.08, 29999.87, 29999.98},
				{-6421.75, 14191.34, -53819.49},
				{47744.67, 54773.03, -13383.40},
				{-24134.06, -17430.58, -69033.38},
				{-12446.87, -11794.27, -107519.69},
			}
			set := &Set{Name: "SpaceEngineer"}
			for _, c := range centers {
				set.Spheres = append(set.Spheres, Sphere{
					Center: geometry.NewVector3(c[0], c[1], c[2]),
					Radius: PlanetRadius,
					Points: defaultPoints,
				})
			}
			return set
		},
	},
	"tetrahedron": {
		description: "4 spheres of radius 57.9 on a regular tetrahedron with edge 100",
		build: func() *Set {
			return Tetrahedron(100, 57.9)
		},
	},
	"debug-1": {
		description: "20 mixed spheres exercising wraparound clipping",
		build: func() *Set {
			rows := [][5]float64{
				{40.85, -97.31, 32.23, 31.48, 1586},
				{-51.46, 93.45, -26.41, 26.34, 1110},
				{24.64, 98.40, -13.29, 20.27, 657},
				{96.58, -0.98, 32.03, 31.56, 1593},
				{-51.39, -51.92, -19.66, 35.37, 2001},
				{-73.20, -31.60, 44.99, 45.79, 3355},
				{12.68, -52.36, 40.34, 39.94, 2553},
				{7.71, -76.20, -3.19, 43.54, 3033},
				{-86.34, -61.38, 20.32, 46.35, 3437},
				{46.32, 10.40, 36.43, 21.23, 721},
				{22.44, 76.58, -9.66, 21.49, 739},
				{-31.54, -6.85, -13.79, 33.26, 1770},
				{-58.12, -60.18, 16.98, 39.66, 2516},
				{48.18, 34.62, -14.28, 42.60, 2904},
				{10.71, -63.87, -19.09, 24.79, 983},
				{-58.36, -5.53, 22.95, 38.13, 2326},
				{74.98, -55.97, 21.34, 24.68, 975},
				{-94.68, -80.55, -33.46, 45.83, 3360},
				{-33.38, -64.22, 41.81, 40.49, 2624},
				{-99.80, -38.62, 5.82, 33.38, 1782},
			}
			set := &Set{Name: "DebugCase 1"}
			for _, r := range rows {
				set.Spheres = append(set.Spheres, Sphere{
					Center: geometry.NewVector3(r[0], r[1], r[2]),
					Radius: r[3],
					Points: int(r[4]),
				})
			}
			return set
		},
	},
	"random": {
		description: "20 random spheres (radius 20..50) in a 200x200x100 box, seed 1",
		build: func() *Set {
			rng := rand.New(rand.NewPCG(1, 1))
			set := Random(rng, 20, 20, 50, geometry.NewVector3(200, 200, 100), defaultPoints)
			set.Name = "Random"
			return set
		},
	},
}

// Fixture returns a fresh copy of a built-in sphere set
func Fixture(name string) (*Set, error) {
	f, ok := fixtures[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q (available: %v)", name, FixtureNames())
	}
	return f.build(), nil
}

// FixtureNames lists the built-in fixtures in alphabetical order
func FixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FixtureDescription returns the one-line description of a fixture
func FixtureDescription(name string) string {
	return fixtures[name].description
}

// Tetrahedron places four equal spheres on the vertices of a regular
// tetrahedron with the given edge length, one vertex at the origin.
func Tetrahedron(edge, radius float64) *Set {
	h := edge * 0.8660254037844386 // sqrt(3)/2
	vertices := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(edge, 0, 0),
		geometry.NewVector3(edge/2, h, 0),
		geometry.NewVector3(edge/2, h/3, edge*0.816496580927726), // sqrt(2/3)
	}

	set := &Set{Name: "Tetraeder"}
	for _, v := range vertices {
		set.Spheres = append(set.Spheres, Sphere{Center: v, Radius: radius, Points: defaultPoints})
	}
	return set
}

// Random generates n spheres with centers uniformly distributed in a box of
// the given size centered at the origin and radii uniform in [minRadius, maxRadius).
// The sample count of each sphere scales with its surface relative to maxRadius.
func Random(rng *rand.Rand, n int, minRadius, maxRadius float64, size geometry.Vector3, points int) *Set {
	set := &Set{Name: "Random", Spheres: make([]Sphere, 0, n)}
	for i := 0; i < n; i++ {
		center := geometry.NewVector3(
			(rng.Float64()-0.5)*size.X,
			(rng.Float64()-0.5)*size.Y,
			(rng.Float64()-0.5)*size.Z,
		)
		r := rng.Float64()*(maxRadius-minRadius) + minRadius
		scaled := float64(points) * r * r / (maxRadius * maxRadius)
		set.Spheres = append(set.Spheres, Sphere{Center: center, Radius: r, Points: int(scaled + 0.5)})
	}
	return set
}
