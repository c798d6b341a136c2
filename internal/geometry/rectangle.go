package geometry

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// Rectangle is a bounded flat surface: a finite patch of a Plane, centered
// at Center and spanning L1 along U and L2 along V. It is the area-light
// primitive the Cornell-box ceiling panel is built from.
type Rectangle struct {
	Center   core.Vec3
	U, V     core.Vec3
	Normal   core.Vec3
	L1, L2   float64
	Material material.Material
}

// NewRectangle creates a rectangle centered at center, spanned by the unit
// vectors u and v over side lengths l1 and l2.
func NewRectangle(center, u, v core.Vec3, l1, l2 float64, mat material.Material) *Rectangle {
	u = u.Normalize()
	v = v.Normalize()
	return &Rectangle{
		Center:   center,
		U:        u,
		V:        v,
		Normal:   u.Cross(v).Normalize(),
		L1:       l1,
		L2:       l2,
		Material: mat,
	}
}

// Hit intersects a ray with the rectangle's plane, then rejects points
// outside the L1 x L2 extent measured along U and V.
func (r *Rectangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(r.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := r.Center.Subtract(ray.Origin).Dot(r.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	diff := hitPoint.Subtract(r.Center)

	const epsilon = 1e-9
	if math.Abs(diff.Dot(r.U)) > r.L1/2+epsilon || math.Abs(diff.Dot(r.V)) > r.L2/2+epsilon {
		return nil, false
	}

	hit := &material.HitRecord{T: t, Point: hitPoint, Material: r.Material, Shape: r}
	hit.SetFaceNormal(ray, r.Normal)
	hit.U, hit.V = r.uv(diff)
	return hit, true
}

// uv maps a point's offset from Center (in world space) to [0,1]x[0,1].
func (r *Rectangle) uv(diff core.Vec3) (float64, float64) {
	u := 0.5 - diff.Dot(r.U)/r.L1
	v := 0.5 - diff.Dot(r.V)/r.L2
	return u, v
}

// BoundingBox returns the axis-aligned box enclosing the rectangle's four
// corners, expanded slightly so a perfectly axis-aligned rectangle still
// has nonzero thickness for the BVH's slab test.
func (r *Rectangle) BoundingBox() core.AABB {
	const epsilon = 1e-4
	halfU := r.U.Multiply(r.L1 / 2)
	halfV := r.V.Multiply(r.L2 / 2)

	corners := [4]core.Vec3{
		r.Center.Add(halfU).Add(halfV),
		r.Center.Add(halfU).Subtract(halfV),
		r.Center.Subtract(halfU).Add(halfV),
		r.Center.Subtract(halfU).Subtract(halfV),
	}

	box := core.NewAABB(corners[0], corners[0])
	for _, c := range corners[1:] {
		box = box.Union(core.NewAABB(c, c))
	}
	return box.Expand(epsilon)
}

// Area returns the rectangle's surface area, L1*L2.
func (r *Rectangle) Area() float64 {
	return r.L1 * r.L2
}

// SampleLight draws a uniformly random point on the rectangle and reports
// its solid-angle PDF as seen from point.
func (r *Rectangle) SampleLight(point core.Vec3, sample core.Vec2) LightSample {
	r1 := (sample.X - 0.5) * r.L1
	r2 := (sample.Y - 0.5) * r.L2
	surfacePoint := r.Center.Add(r.U.Multiply(r1)).Add(r.V.Multiply(r2))
	diff := point.Subtract(surfacePoint)
	pdf := areaToSolidAnglePDF(r.Area(), r.Normal, diff)
	return LightSample{Point: surfacePoint, Normal: r.Normal, Distance: diff.Length(), PDF: pdf}
}

// PDFLight returns the solid-angle PDF of having sampled direction from
// point via SampleLight.
func (r *Rectangle) PDFLight(point core.Vec3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := r.Hit(ray, 1e-6, math.Inf(1))
	if !ok {
		return 0
	}
	diff := point.Subtract(hit.Point)
	return areaToSolidAnglePDF(r.Area(), r.Normal, diff)
}

// IsLightSource reports whether this rectangle's material currently emits light.
func (r *Rectangle) IsLightSource() bool {
	return isEmitting(r.Material)
}
