package renderer

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// Camera is a pinhole camera: a position, a unit viewing direction, and a
// screen plane one unit in front of it spanning ScreenWidth x ScreenHeight
// (ScreenWidth fixed at 1, ScreenHeight set by the image's aspect ratio).
// Every ray originates at Position and passes through a point on that plane.
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3 // unit viewing direction
	Up       core.Vec3 // unit, orthogonalized against Forward
	Right    core.Vec3 // Forward x Up

	screenPosition core.Vec3
	screenWidth    float64
	screenHeight   float64
	width          int
	height         int
}

// NewCamera builds a pinhole camera looking along viewingDirection from
// position. up need not be orthogonal to viewingDirection; it is
// re-orthogonalized the way the source camera does, by replacing it with the
// component perpendicular to the viewing direction.
func NewCamera(position, viewingDirection, up core.Vec3, width, height int) *Camera {
	forward := viewingDirection.Normalize()
	if forward.Dot(up) != 0 {
		perpendicular := forward.Cross(up)
		up = perpendicular.Cross(forward)
	}
	up = up.Normalize()

	screenWidth := 1.0
	screenHeight := screenWidth * float64(height) / float64(width)

	return &Camera{
		Position:       position,
		Forward:        forward,
		Up:             up,
		Right:          forward.Cross(up),
		screenPosition: position.Add(forward),
		screenWidth:    screenWidth,
		screenHeight:   screenHeight,
		width:          width,
		height:         height,
	}
}

// indexToPosition maps a (possibly fractional, for anti-aliasing jitter)
// pixel coordinate to its corresponding point on the screen plane. Row 0 is
// the top of the screen, so y grows against Up.
func (c *Camera) indexToPosition(x, y float64) core.Vec3 {
	localX := x*c.screenWidth/float64(c.width) - c.screenWidth/2
	localY := c.screenHeight/2 - y*c.screenHeight/float64(c.height)
	return c.Right.Multiply(localX).Add(c.Up.Multiply(localY)).Add(c.screenPosition)
}

// GetRay returns the primary ray through pixel coordinate (x, y), which may
// carry a fractional jitter offset for anti-aliasing.
func (c *Camera) GetRay(x, y float64) core.Ray {
	pixelPoint := c.indexToPosition(x, y)
	direction := pixelPoint.Subtract(c.Position).Normalize()
	return core.NewRay(c.Position, direction)
}
