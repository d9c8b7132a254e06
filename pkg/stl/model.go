// Package stl holds triangle meshes and reads and writes them as STL.
package stl

import (
	"github.com/philipparndt/gorim/pkg/geometry"
)

// Model is a named triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a triangle
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the box spanned by all vertices
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea sums the triangle areas
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume is the signed volume enclosed by the mesh, positive for a closed
// mesh with counter-clockwise (outward) winding.
func (m *Model) Volume() float64 {
	var v float64
	for _, t := range m.Triangles {
		v += t.SignedVolume()
	}
	return v
}
