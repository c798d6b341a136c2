package geometry

import (
	"sort"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// ObjectUnion is a composite primitive: it owns a list of shapes, optionally
// accelerates Hit with an internal BVH, and builds an area-weighted
// distribution over whichever of those shapes are currently emissive so the
// integrator can pick a light to sample for next-event estimation.
type ObjectUnion struct {
	Shapes []Shape
	bvh    *BVH

	lightIndices   []int     // indices into Shapes that are emissive Lights
	cumulativeArea []float64 // running total of Area() over lightIndices
	totalLightArea float64
}

// NewObjectUnion collects shapes into a union, building an internal BVH when
// useBVH is true (worthwhile once the shape count is large enough that
// linear Hit scanning would dominate render time).
func NewObjectUnion(shapes []Shape, useBVH bool) *ObjectUnion {
	u := &ObjectUnion{Shapes: shapes}
	if useBVH {
		u.bvh = NewBVH(shapes)
	}

	for i, s := range shapes {
		light, ok := s.(Light)
		if !ok || !light.IsLightSource() {
			continue
		}
		u.totalLightArea += light.Area()
		u.lightIndices = append(u.lightIndices, i)
		u.cumulativeArea = append(u.cumulativeArea, u.totalLightArea)
	}

	return u
}

// Hit finds the closest intersection among all member shapes.
func (u *ObjectUnion) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if u.bvh != nil {
		return u.bvh.Hit(ray, tMin, tMax)
	}

	var closest *material.HitRecord
	closestSoFar := tMax
	for _, s := range u.Shapes {
		if hit, ok := s.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union's overall bounding box.
func (u *ObjectUnion) BoundingBox() core.AABB {
	if u.bvh != nil {
		return u.bvh.BoundingBox()
	}
	if len(u.Shapes) == 0 {
		return core.AABB{}
	}
	box := u.Shapes[0].BoundingBox()
	for _, s := range u.Shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	return box
}

// HasLights reports whether the union contains any emissive shape.
func (u *ObjectUnion) HasLights() bool {
	return len(u.lightIndices) > 0
}

// SampleLight picks one emissive shape with probability proportional to its
// area (selector in [0,1) chooses the shape, sample drives the point within
// it) and samples a point on it, reporting the mixture PDF of the whole
// union rather than that single shape's own PDF -- the value next-event
// estimation and MIS both need.
func (u *ObjectUnion) SampleLight(point core.Vec3, selector float64, sample core.Vec2) (LightSample, bool) {
	if len(u.lightIndices) == 0 {
		return LightSample{}, false
	}

	target := selector * u.totalLightArea
	// Smallest i such that cumulativeArea[i] >= target: a standard
	// upper-bound binary search, with no off-by-one read before index 0.
	i := sort.Search(len(u.cumulativeArea), func(i int) bool {
		return u.cumulativeArea[i] >= target
	})
	if i == len(u.cumulativeArea) {
		i = len(u.cumulativeArea) - 1
	}

	light := u.Shapes[u.lightIndices[i]].(Light)
	ls := light.SampleLight(point, sample)

	direction := ls.Point.Subtract(point)
	if direction.Length() > 0 {
		ls.PDF = u.PDFLight(point, direction.Normalize())
	}
	return ls, true
}

// PDFLight returns the mixture solid-angle PDF, over every emissive shape,
// of having sampled direction from point via SampleLight.
func (u *ObjectUnion) PDFLight(point core.Vec3, direction core.Vec3) float64 {
	if u.totalLightArea <= 0 {
		return 0
	}
	var sum float64
	for _, idx := range u.lightIndices {
		light := u.Shapes[idx].(Light)
		weight := light.Area() / u.totalLightArea
		sum += weight * light.PDFLight(point, direction)
	}
	return sum
}
