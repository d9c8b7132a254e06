package geometry

import (
	"errors"
	"math"
)

// ErrZeroNormal is returned when a frame is requested for a zero or non-finite normal.
var ErrZeroNormal = errors.New("normal must be a non-zero finite vector")

// Frame is an orthonormal basis built around a plane normal.
// AxisY and AxisZ span the plane perpendicular to Normal and are used to
// parametrize circles lying in that plane.
type Frame struct {
	Normal Vector3
	AxisY  Vector3
	AxisZ  Vector3
}

// NewFrame derives a frame from the given normal. The normal is normalized
// first; AxisY is taken perpendicular to the world axis least aligned with
// the normal, which keeps the construction stable for axis-aligned input.
func NewFrame(normal Vector3) (Frame, error) {
	if normal.IsZero() || !normal.IsFinite() {
		return Frame{}, ErrZeroNormal
	}
	n := normal.Normalize()

	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	var helper Vector3
	switch {
	case ax <= ay && ax <= az:
		helper = NewVector3(1, 0, 0)
	case ay <= az:
		helper = NewVector3(0, 1, 0)
	default:
		helper = NewVector3(0, 0, 1)
	}

	y := n.Cross(helper).Normalize()
	z := n.Cross(y).Normalize()

	return Frame{Normal: n, AxisY: y, AxisZ: z}, nil
}

// ToLocal expresses a world-space offset in frame coordinates:
// X along the normal, Y along AxisY, Z along AxisZ.
func (f Frame) ToLocal(offset Vector3) Vector3 {
	return Vector3{
		X: offset.Dot(f.Normal),
		Y: offset.Dot(f.AxisY),
		Z: offset.Dot(f.AxisZ),
	}
}

// ToWorld is the inverse of ToLocal.
func (f Frame) ToWorld(local Vector3) Vector3 {
	return f.Normal.Mul(local.X).Add(f.AxisY.Mul(local.Y)).Add(f.AxisZ.Mul(local.Z))
}

// PointOnCircle returns center + radius*cos(angle)*AxisY + radius*sin(angle)*AxisZ.
func (f Frame) PointOnCircle(center Vector3, radius, angle float64) Vector3 {
	return center.
		Add(f.AxisY.Mul(radius * math.Cos(angle))).
		Add(f.AxisZ.Mul(radius * math.Sin(angle)))
}
