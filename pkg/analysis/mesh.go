package analysis

import (
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
	"github.com/philipparndt/gorim/pkg/stl"
)

// MeshStats contains measurements of a tessellated surface
type MeshStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh measures a triangle mesh. Volume is the enclosed volume,
// meaningful for closed meshes only.
func AnalyzeMesh(model *stl.Model) *MeshStats {
	stats := &MeshStats{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		Volume:        math.Abs(model.Volume()),
	}
	stats.Dimensions = stats.BoundingBox.Size()

	minLength := math.MaxFloat64
	total := 0.0
	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			stats.EdgeCount++
			total += length
			minLength = math.Min(minLength, length)
			stats.MaxEdgeLength = math.Max(stats.MaxEdgeLength, length)
		}
	}
	if stats.EdgeCount > 0 {
		stats.MinEdgeLength = minLength
		stats.AvgEdgeLength = total / float64(stats.EdgeCount)
	}
	return stats
}
