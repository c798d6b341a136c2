package geometry

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// Sphere is the canonical primitive: cheap to intersect, cheap to sample as
// a light, and a good stand-in for "a surface with curvature" in test scenes.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray-sphere quadratic for the nearest root in [tMin, tMax].
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	hit := &material.HitRecord{T: root, Point: point, Material: s.Material, Shape: s}
	outwardNormal := point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = s.uv(point)
	return hit, true
}

// uv maps a point on the sphere to (u, v) in [0,1]x[0,1] using the standard
// spherical-coordinate parameterization.
func (s *Sphere) uv(point core.Vec3) (float64, float64) {
	p := point.Subtract(s.Center).Divide(s.Radius)
	u := 0.5 + math.Atan2(-p.Z, -p.X)/(2*math.Pi)
	v := 0.5 + math.Asin(-p.Y)/math.Pi
	return u, v
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Area returns the sphere's surface area, 4*pi*r^2.
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// SampleLight draws a point on the sphere visible from `point`. When the
// shading point is outside the sphere it samples the visible cone directly
// (importance sampling solid angle, avoiding wasted samples on the sphere's
// far side); when inside (only possible for a light the path started
// embedded in) it falls back to a uniform surface point.
func (s *Sphere) SampleLight(point core.Vec3, sample core.Vec2) LightSample {
	toCenter := s.Center.Subtract(point)
	distance := toCenter.Length()

	if distance <= s.Radius {
		surfacePoint := core.SampleOnUnitSphere(sample).Multiply(s.Radius).Add(s.Center)
		normal := surfacePoint.Subtract(s.Center).Normalize()
		diff := point.Subtract(surfacePoint)
		pdf := areaToSolidAnglePDF(s.Area(), normal, diff)
		return LightSample{Point: surfacePoint, Normal: normal, Distance: diff.Length(), PDF: pdf}
	}

	cosThetaMax := math.Sqrt(1 - (s.Radius/distance)*(s.Radius/distance))
	direction := toCenter.Normalize()
	sampledDirection := core.SampleCone(direction, cosThetaMax, sample)

	// Project the sampled direction back onto the sphere surface to get an
	// exact point (needed for shadow-ray distance and the normal).
	surfacePoint, ok := s.projectDirectionToSurface(point, sampledDirection)
	if !ok {
		// Numerical edge case at the silhouette; fall back to the nearest point.
		surfacePoint = s.Center.Subtract(direction.Multiply(s.Radius))
	}
	normal := surfacePoint.Subtract(s.Center).Normalize()
	pdf := core.UniformConePDF(cosThetaMax)
	return LightSample{Point: surfacePoint, Normal: normal, Distance: surfacePoint.Subtract(point).Length(), PDF: pdf}
}

// projectDirectionToSurface finds where a ray from point along direction
// first hits the sphere.
func (s *Sphere) projectDirectionToSurface(point, direction core.Vec3) (core.Vec3, bool) {
	ray := core.NewRay(point, direction)
	hit, ok := s.Hit(ray, 1e-6, math.Inf(1))
	if !ok {
		return core.Vec3{}, false
	}
	return hit.Point, true
}

// PDFLight returns the solid-angle PDF of having sampled `direction` from
// `point` via SampleLight, used when a path reaches this light by BSDF
// sampling and MIS needs the light-sampling PDF for the same direction.
func (s *Sphere) PDFLight(point core.Vec3, direction core.Vec3) float64 {
	distance := s.Center.Subtract(point).Length()
	if distance <= s.Radius {
		ray := core.NewRay(point, direction)
		hit, ok := s.Hit(ray, 1e-6, math.Inf(1))
		if !ok {
			return 0
		}
		diff := point.Subtract(hit.Point)
		return areaToSolidAnglePDF(s.Area(), hit.Normal, diff)
	}
	cosThetaMax := math.Sqrt(1 - (s.Radius/distance)*(s.Radius/distance))
	if direction.Normalize().Dot(s.Center.Subtract(point).Divide(distance)) < cosThetaMax {
		return 0
	}
	return core.UniformConePDF(cosThetaMax)
}

// areaToSolidAnglePDF converts a per-area PDF (uniform = 1/Area) measured at
// surfacePoint into a per-solid-angle PDF as seen from the other end of
// diff = shadingPoint - surfacePoint.
func areaToSolidAnglePDF(area float64, surfaceNormal core.Vec3, diff core.Vec3) float64 {
	distSq := diff.LengthSquared()
	if distSq <= 0 {
		return 0
	}
	cosTheta := math.Max(0, surfaceNormal.Dot(diff.Normalize()))
	if cosTheta <= 0 {
		return 0
	}
	return distSq / (cosTheta * area)
}

// IsLightSource reports whether this sphere's material currently emits light.
func (s *Sphere) IsLightSource() bool {
	return isEmitting(s.Material)
}
