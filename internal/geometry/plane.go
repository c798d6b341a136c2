package geometry

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// Plane is an infinite flat surface spanned by two edge vectors U and V
// through Point; its normal is U x V, normalized.
type Plane struct {
	Point    core.Vec3
	U, V     core.Vec3
	Normal   core.Vec3
	Material material.Material
}

// NewPlane creates an infinite plane through point, spanned by u and v.
func NewPlane(point, u, v core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		U:        u,
		V:        v,
		Normal:   u.Cross(v).Normalize(),
		Material: mat,
	}
}

// Hit intersects a ray with the plane.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hit := &material.HitRecord{T: t, Point: hitPoint, Material: p.Material, Shape: p}
	hit.SetFaceNormal(ray, p.Normal)
	return hit, true
}

// BoundingBox returns a thin bounding box aligned with whichever axis the
// plane's normal happens to be parallel to, falling back to a very large
// box for a plane in general position -- an infinite plane has no finite
// bounds, but the BVH needs *something* to slab-test against.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 1e-3

	switch getAxisAlignment(p.Normal) {
	case xAxisAligned:
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -largeValue, -largeValue),
			core.NewVec3(x+epsilon, largeValue, largeValue),
		)
	case yAxisAligned:
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-largeValue, y-epsilon, -largeValue),
			core.NewVec3(largeValue, y+epsilon, largeValue),
		)
	case zAxisAligned:
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, z-epsilon),
			core.NewVec3(largeValue, largeValue, z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
