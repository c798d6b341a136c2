package geometry

import (
	"sort"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// bvhNode is a node in the bounding volume hierarchy: either a leaf holding
// a handful of shapes, or an internal node with two children.
type bvhNode struct {
	BoundingBox core.AABB
	Left        *bvhNode
	Right       *bvhNode
	Shapes      []Shape
}

// BVH accelerates ray intersection against a static set of shapes by
// recursively partitioning them along their longest bounding-box axis.
type BVH struct {
	Root *bvhNode
}

// leafSize is the shape count at or below which a node stores its shapes
// directly instead of splitting further.
const leafSize = 12

// NewBVH builds a BVH over shapes. The input slice is not modified.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)
	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively sorts shapes by bounding-box centroid along the
// longest axis of their combined bounding box and splits at the median,
// giving each half the same shape count regardless of how the centroids
// are distributed in space.
func buildBVH(shapes []Shape) *bvhNode {
	boundingBox := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		boundingBox = boundingBox.Union(s.BoundingBox())
	}

	if len(shapes) <= leafSize {
		return &bvhNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return centroidAxis(shapes[i], axis) < centroidAxis(shapes[j], axis)
	})

	mid := len(shapes) / 2
	return &bvhNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// centroidAxis returns a shape's bounding-box center coordinate along axis.
func centroidAxis(s Shape, axis int) float64 {
	center := s.BoundingBox().Center()
	switch axis {
	case 0:
		return center.X
	case 1:
		return center.Y
	default:
		return center.Z
	}
}

// Hit tests the ray against the hierarchy, returning the closest
// intersection in [tMin, tMax] across all contained shapes.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *material.HitRecord
		closestSoFar := tMax
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	var closest *material.HitRecord
	closestSoFar := tMax
	if node.Left != nil {
		if hit, ok := hitNode(node.Left, ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}
	if node.Right != nil {
		if hit, ok := hitNode(node.Right, ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the overall bounding box of the hierarchy.
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}
