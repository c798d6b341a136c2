package material

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// ValueMap provides spatially-varying material properties: a constant color,
// a checker pattern, or (when wired to an image loader) a texture. UV is
// used for parametric surfaces, point for procedural ones.
type ValueMap interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// ConstantMap is a ValueMap that returns the same value everywhere.
type ConstantMap struct {
	Value core.Vec3
}

// NewConstantMap creates a ValueMap returning a fixed color.
func NewConstantMap(value core.Vec3) *ConstantMap {
	return &ConstantMap{Value: value}
}

// Evaluate returns the constant color regardless of UV or position.
func (c *ConstantMap) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return c.Value
}

// CheckerMap alternates between two colors in a 3D grid, useful for visually
// verifying UV/world-space mapping on a primitive during development.
type CheckerMap struct {
	Odd, Even core.Vec3
	Scale     float64
}

// NewCheckerMap creates a 3D checker pattern with the given cell scale.
func NewCheckerMap(odd, even core.Vec3, scale float64) *CheckerMap {
	return &CheckerMap{Odd: odd, Even: even, Scale: scale}
}

// Evaluate returns Odd or Even depending on which grid cell `point` falls in.
func (c *CheckerMap) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sum := floor(point.X*c.Scale) + floor(point.Y*c.Scale) + floor(point.Z*c.Scale)
	if int64(sum)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// ScalarMap is the scalar counterpart of ValueMap, for material properties
// like roughness or a diffuse/specular mixing weight that vary over a
// surface but carry a single number rather than a color.
type ScalarMap interface {
	Evaluate(uv core.Vec2, point core.Vec3) float64
}

// ConstantScalarMap is a ScalarMap that returns the same value everywhere.
type ConstantScalarMap struct {
	Value float64
}

// NewConstantScalarMap creates a ScalarMap returning a fixed value.
func NewConstantScalarMap(value float64) *ConstantScalarMap {
	return &ConstantScalarMap{Value: value}
}

// Evaluate returns the constant value regardless of UV or position.
func (c *ConstantScalarMap) Evaluate(uv core.Vec2, point core.Vec3) float64 {
	return c.Value
}

func floor(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}
