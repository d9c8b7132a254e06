package viewer

import (
	"math"

	"github.com/philipparndt/gorim/pkg/geometry"
)

const minDistance = 1e-3

// Camera orbits a target point at a fixed distance
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // elevation
	RotationY float64 // azimuth
}

// NewCamera positions a camera so the whole bounding box is in view
func NewCamera(bbox geometry.BoundingBox) *Camera {
	distance := bbox.Diagonal() * 1.5
	if distance < minDistance {
		distance = 1
	}

	c := &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera on its orbit from the rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate changes elevation and azimuth. Elevation stays short of the poles.
func (c *Camera) Rotate(deltaX, deltaY float64) {
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX+deltaX))
	c.RotationY = math.Mod(c.RotationY+deltaY, 2*math.Pi)
	c.UpdatePosition()
}

// Zoom scales the orbit distance by 1+delta
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(minDistance, c.Distance*(1.0+delta))
	c.UpdatePosition()
}

// Project maps a point to screen coordinates. The third value is the depth
// along the view direction; points behind the camera have depth <= 0. A
// viewport without area projects everything to depth 0.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0, 0
	}
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	depth := relative.Dot(forward)

	z := math.Max(depth, 0.01)
	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, depth
}
