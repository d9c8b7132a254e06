// Package mesh tessellates the union of a sphere set into a triangle mesh
// using the sdfx signed distance field library.
package mesh

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/philipparndt/gorim/pkg/stl"
)

// DefaultCells is the marching cubes resolution along the longest axis.
const DefaultCells = 200

// ErrNoSpheres is returned when there is nothing to tessellate.
var ErrNoSpheres = errors.New("no spheres to tessellate")

// Union builds the signed distance field of all spheres combined.
func Union(spheres []sphere.Sphere) (sdf.SDF3, error) {
	if len(spheres) == 0 {
		return nil, ErrNoSpheres
	}
	parts := make([]sdf.SDF3, 0, len(spheres))
	for i, s := range spheres {
		ball, err := sdf.Sphere3D(s.Radius)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		m := sdf.Translate3d(v3.Vec{X: s.Center.X, Y: s.Center.Y, Z: s.Center.Z})
		parts = append(parts, sdf.Transform3D(ball, m))
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return sdf.Union3D(parts...), nil
}

func vector(v v3.Vec) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}

// Tessellate meshes the outer surface of the sphere union with marching
// cubes. cells is the resolution along the longest bounding box axis.
func Tessellate(name string, spheres []sphere.Sphere, cells int) (*stl.Model, error) {
	if cells < 8 {
		return nil, fmt.Errorf("mesh resolution must be at least 8 cells, got %d", cells)
	}
	union, err := Union(spheres)
	if err != nil {
		return nil, err
	}

	triangles := render.ToTriangles(union, render.NewMarchingCubesUniform(cells))

	model := stl.NewModel(name)
	for _, tri := range triangles {
		t := geometry.NewTriangle(
			vector(tri.Normal()),
			vector(tri[0]),
			vector(tri[1]),
			vector(tri[2]),
		)
		// marching cubes emits slivers where the surface grazes a corner
		if t.IsDegenerate(0) {
			continue
		}
		model.AddTriangle(t)
	}
	return model, nil
}
