// Package sphere holds sphere sets: the spheres themselves, file loading,
// built-in fixtures, random generation and surface sampling.
package sphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
)

// ErrInvalidRadius is returned for spheres whose radius is not a positive finite number.
var ErrInvalidRadius = errors.New("radius must be positive and finite")

// ErrInvalidCenter is returned for spheres whose center has a NaN or infinite component.
var ErrInvalidCenter = errors.New("center must be finite")

// Sphere is a ball given by center and radius. Points is the number of
// surface samples used when the sphere is rendered as a point cloud.
type Sphere struct {
	Center geometry.Vector3
	Radius float64
	Points int
}

// New creates a validated sphere
func New(center geometry.Vector3, radius float64, points int) (Sphere, error) {
	s := Sphere{Center: center, Radius: radius, Points: points}
	if err := s.Validate(); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// Validate checks radius, center and sample count
func (s Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, s.Radius)
	}
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidCenter, s.Center)
	}
	if s.Points < 0 {
		return fmt.Errorf("sample count must not be negative: %d", s.Points)
	}
	return nil
}

// Contains reports whether p lies strictly inside the sphere
func (s Sphere) Contains(p geometry.Vector3) bool {
	return s.Center.Distance(p) < s.Radius
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere[center=%v, radius=%g, points=%d]", s.Center, s.Radius, s.Points)
}

// Set is a named, ordered list of spheres. Pair iteration follows the
// order of Spheres; spheres are identified by index.
type Set struct {
	Name    string
	Spheres []Sphere
}

// Validate checks every sphere of the set
func (s *Set) Validate() error {
	for i, sp := range s.Spheres {
		if err := sp.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	return nil
}

// BoundingBox returns the box enclosing all spheres
func (s *Set) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, sp := range s.Spheres {
		bbox.ExtendSphere(sp.Center, sp.Radius)
	}
	return bbox
}

// TotalPoints returns the sum of surface sample counts
func (s *Set) TotalPoints() int {
	total := 0
	for _, sp := range s.Spheres {
		total += sp.Points
	}
	return total
}
