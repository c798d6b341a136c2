// Package scene assembles concrete, renderable worlds: a camera, a set of
// shapes collected into an ObjectUnion, a background medium, and a simple
// sky gradient evaluated for rays that escape every shape. It implements
// integrator.Scene structurally, without importing internal/integrator,
// the same inversion df07 uses to keep its scene package independent of
// its renderer package.
package scene

import (
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
	"github.com/JoarGunnarsson/pathtracer/internal/renderer"
)

// Scene is a complete renderable world.
type Scene struct {
	Union  *geometry.ObjectUnion
	Camera *renderer.Camera

	// TopColor and BottomColor define a vertical gradient sampled by
	// direction for rays that miss every shape, df07's sky-background
	// convention generalized from a flat color to a two-stop gradient.
	TopColor, BottomColor core.Vec3

	// Medium is the participating medium filling the space outside every
	// shape (Vacuum for a clear scene, a scattering medium for a foggy one).
	Medium medium.Medium
}

// New builds a Scene from shapes, collecting them into an ObjectUnion. useBVH
// is worth enabling once a scene's shape count grows past a handful.
func New(shapes []geometry.Shape, camera *renderer.Camera, top, bottom core.Vec3, bgMedium medium.Medium, useBVH bool) *Scene {
	if bgMedium == nil {
		bgMedium = &medium.Vacuum{}
	}
	return &Scene{
		Union:       geometry.NewObjectUnion(shapes, useBVH),
		Camera:      camera,
		TopColor:    top,
		BottomColor: bottom,
		Medium:      bgMedium,
	}
}

// Hit implements integrator.Scene.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.Union.Hit(ray, tMin, tMax)
}

// SampleLight implements integrator.Scene.
func (s *Scene) SampleLight(point core.Vec3, selector float64, sample core.Vec2) (geometry.LightSample, bool) {
	return s.Union.SampleLight(point, selector, sample)
}

// LightPDF implements integrator.Scene.
func (s *Scene) LightPDF(point core.Vec3, direction core.Vec3) float64 {
	return s.Union.PDFLight(point, direction)
}

// BackgroundMedium implements integrator.Scene.
func (s *Scene) BackgroundMedium() medium.Medium {
	return s.Medium
}

// Background implements integrator.Scene: a vertical lerp between
// BottomColor and TopColor by the ray direction's Y component.
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.BottomColor.Multiply(1 - t).Add(s.TopColor.Multiply(t))
}

// groundRectangle builds a large flat quad standing in for an infinite
// ground plane, centered at center and spanning size along both X and Z.
func groundRectangle(center core.Vec3, size float64, mat material.Material) *geometry.Rectangle {
	return geometry.NewRectangle(center, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), size, size, mat)
}
