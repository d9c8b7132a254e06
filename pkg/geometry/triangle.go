package geometry

// Triangle is a facet of a tessellated surface. Normal may be zero when the
// source did not provide one; CalculateNormal recovers it from the winding.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

func (t Triangle) cross() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
}

// CalculateNormal computes the unit normal from the winding order (V1, V2, V3)
func (t Triangle) CalculateNormal() Vector3 {
	return t.cross().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.cross().Length() / 2
}

// IsDegenerate reports a facet whose area is at most eps
func (t Triangle) IsDegenerate(eps float64) bool {
	return t.Area() <= eps
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// SignedVolume is the volume of the tetrahedron spanned by the facet and the
// origin. Summed over a closed outward-wound mesh it gives the enclosed volume.
func (t Triangle) SignedVolume() float64 {
	return t.V1.Dot(t.V2.Cross(t.V3)) / 6
}
