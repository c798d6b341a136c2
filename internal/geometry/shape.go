// Package geometry implements the renderable primitives (sphere, plane,
// rectangle, triangle), their acceleration structure (a median-split BVH),
// and the ObjectUnion composite that ties a primitive list together with a
// light-sampling distribution over its emissive members.
package geometry

import (
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// Shape is anything that can be hit by a ray and bounded by an AABB.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// Light is a Shape that can also be sampled directly for next-event
// estimation: given a shading point, draw a point on the surface and report
// the solid-angle PDF of having drawn it via this distribution.
type Light interface {
	Shape
	Area() float64
	SampleLight(point core.Vec3, sample core.Vec2) LightSample
	PDFLight(point core.Vec3, direction core.Vec3) float64
	// IsLightSource reports whether this shape's current material actually
	// emits light, so ObjectUnion can exclude geometrically-sampleable
	// shapes (any Sphere, Rectangle, Triangle) that merely happen to carry
	// a non-emissive material.
	IsLightSource() bool
}

// isEmitting checks whether mat is an emissive material currently emitting,
// the shared test behind every primitive's IsLightSource method.
func isEmitting(mat material.Material) bool {
	emitter, ok := mat.(material.Emitter)
	return ok && emitter.IsLightSource()
}

// LightSample is the result of sampling a point on a light's surface from a
// given shading point.
type LightSample struct {
	Point    core.Vec3
	Normal   core.Vec3
	Distance float64
	PDF      float64 // probability density with respect to solid angle at `point`
}

// axisAlignment classifies a plane normal as aligned with a coordinate axis,
// letting Plane build a tight AABB instead of falling back to a huge one.
type axisAlignment int

const (
	notAligned axisAlignment = iota
	xAxisAligned
	yAxisAligned
	zAxisAligned
)

func getAxisAlignment(normal core.Vec3) axisAlignment {
	const tolerance = 1e-9
	absX, absY, absZ := abs(normal.X), abs(normal.Y), abs(normal.Z)
	if absX > 1-tolerance && absY < tolerance && absZ < tolerance {
		return xAxisAligned
	}
	if absY > 1-tolerance && absX < tolerance && absZ < tolerance {
		return yAxisAligned
	}
	if absZ > 1-tolerance && absX < tolerance && absY < tolerance {
		return zAxisAligned
	}
	return notAligned
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
