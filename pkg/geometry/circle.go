package geometry

import (
	"fmt"
	"math"
)

// Circle is a circle embedded in 3D space. Its plane is spanned by
// Frame.AxisY and Frame.AxisZ; Frame.Normal is perpendicular to it.
type Circle struct {
	Center Vector3
	Radius float64
	Frame  Frame
}

// Point returns the point at the given angle (radians, measured from AxisY towards AxisZ)
func (c Circle) Point(angle float64) Vector3 {
	return c.Frame.PointOnCircle(c.Center, c.Radius, angle)
}

// Angle returns the in-plane angle of p as seen from the circle's center
func (c Circle) Angle(p Vector3) float64 {
	local := c.Frame.ToLocal(p.Sub(c.Center))
	return math.Atan2(local.Z, local.Y)
}

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircleInFrame fits a circle to a set of 3D points projected into the
// plane of the given frame. The frame's origin is taken at origin; the
// out-of-plane offset of the fitted center is the mean offset of the points.
//
// Uses the 3-point determinant formula for calculating a circle through 3 points:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func FitCircleInFrame(points []Vector3, frame Frame, origin Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}

	// Project points into the plane
	points2D := make([][2]float64, len(points))
	var offset float64
	for i, p := range points {
		local := frame.ToLocal(p.Sub(origin))
		points2D[i] = [2]float64{local.Y, local.Z}
		offset += local.X
	}
	offset /= float64(len(points))

	// First, middle, and last points give good coverage of an arc
	p1 := points2D[0]
	p2 := points2D[len(points2D)/2]
	p3 := points2D[len(points2D)-1]
	if p1 == p3 && len(points2D) > 3 {
		// Closed polyline: last point repeats the first
		p3 = points2D[len(points2D)/4]
	}

	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	cy := (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D
	cz := (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D

	dy := x1 - cy
	dz := y1 - cz
	radius := math.Sqrt(dy*dy + dz*dz)

	n := float64(len(points2D))
	var sumError float64
	for _, p := range points2D {
		dy := p[0] - cy
		dz := p[1] - cz
		dist := math.Sqrt(dy*dy + dz*dz)
		sumError += (dist - radius) * (dist - radius)
	}

	return &CircleFit{
		Center: origin.Add(frame.ToWorld(NewVector3(offset, cy, cz))),
		Radius: radius,
		Normal: frame.Normal,
		StdDev: math.Sqrt(sumError / n),
	}, nil
}
