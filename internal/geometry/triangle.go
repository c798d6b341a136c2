package geometry

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// Triangle is a flat triangular surface defined by three vertices, tested
// for intersection with the watertight permute-and-shear algorithm (Woop,
// Benthin & Wald) so that rays passing exactly through a shared edge never
// slip between two adjacent triangles.
type Triangle struct {
	P1, P2, P3 core.Vec3
	Normal     core.Vec3
	Material   material.Material
	area       float64
}

// NewTriangle creates a triangle from three vertices in counter-clockwise
// winding order (as seen from the front face).
func NewTriangle(p1, p2, p3 core.Vec3, mat material.Material) *Triangle {
	edge1 := p2.Subtract(p1)
	edge2 := p3.Subtract(p1)
	cross := edge1.Cross(edge2)
	return &Triangle{
		P1:       p1,
		P2:       p2,
		P3:       p3,
		Normal:   cross.Normalize(),
		Material: mat,
		area:     0.5 * cross.Length(),
	}
}

// Hit permutes and shears the triangle's vertices into the ray's local
// frame, then applies the edge-function sign test.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	kx, ky, kz, sx, sy, sz := ray.WatertightTerms()

	p1t := permute(tr.P1.Subtract(ray.Origin), kx, ky, kz)
	p2t := permute(tr.P2.Subtract(ray.Origin), kx, ky, kz)
	p3t := permute(tr.P3.Subtract(ray.Origin), kx, ky, kz)

	p1t.X -= sx * p1t.Z
	p1t.Y -= sy * p1t.Z
	p2t.X -= sx * p2t.Z
	p2t.Y -= sy * p2t.Z
	p3t.X -= sx * p3t.Z
	p3t.Y -= sy * p3t.Z

	e1 := p2t.X*p3t.Y - p2t.Y*p3t.X
	e2 := p3t.X*p1t.Y - p3t.Y*p1t.X
	e3 := p1t.X*p2t.Y - p1t.Y*p2t.X

	if (e1 < 0 || e2 < 0 || e3 < 0) && (e1 > 0 || e2 > 0 || e3 > 0) {
		return nil, false
	}

	det := e1 + e2 + e3
	if det == 0 {
		return nil, false
	}

	p1t.Z *= sz
	p2t.Z *= sz
	p3t.Z *= sz
	tScaled := e1*p1t.Z + e2*p2t.Z + e3*p3t.Z

	t := tScaled / det
	if t < tMin || t > tMax {
		return nil, false
	}

	invDet := 1 / det
	v := e2 * invDet
	w := e3 * invDet

	hitPoint := ray.At(t)
	hit := &material.HitRecord{T: t, Point: hitPoint, Material: tr.Material, Shape: tr}
	hit.SetFaceNormal(ray, tr.Normal)
	hit.U, hit.V = v, w
	return hit, true
}

// permute reorders a vector's components according to the ray's axis
// permutation, placing the ray's dominant direction axis last.
func permute(v core.Vec3, kx, ky, kz int) core.Vec3 {
	components := [3]float64{v.X, v.Y, v.Z}
	return core.NewVec3(components[kx], components[ky], components[kz])
}

// BoundingBox returns the triangle's axis-aligned bounding box.
func (tr *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(tr.P1, tr.P2, tr.P3)
}

// Area returns the triangle's surface area.
func (tr *Triangle) Area() float64 {
	return tr.area
}

// SampleLight draws a uniformly random barycentric point on the triangle.
func (tr *Triangle) SampleLight(point core.Vec3, sample core.Vec2) LightSample {
	u, v, w := core.SampleBarycentric(sample)
	surfacePoint := tr.P1.Multiply(u).Add(tr.P2.Multiply(v)).Add(tr.P3.Multiply(w))
	diff := point.Subtract(surfacePoint)
	pdf := areaToSolidAnglePDF(tr.area, tr.Normal, diff)
	return LightSample{Point: surfacePoint, Normal: tr.Normal, Distance: diff.Length(), PDF: pdf}
}

// PDFLight returns the solid-angle PDF of having sampled direction from
// point via SampleLight.
func (tr *Triangle) PDFLight(point core.Vec3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := tr.Hit(ray, 1e-6, math.Inf(1))
	if !ok {
		return 0
	}
	diff := point.Subtract(hit.Point)
	return areaToSolidAnglePDF(tr.area, tr.Normal, diff)
}

// IsLightSource reports whether this triangle's material currently emits light.
func (tr *Triangle) IsLightSource() bool {
	return isEmitting(tr.Material)
}
