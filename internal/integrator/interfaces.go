// Package integrator implements the recursive Monte-Carlo light-transport
// estimator: it orchestrates scene intersection, participating-medium
// sampling, BSDF sampling, next-event estimation with multiple importance
// sampling, and Russian-roulette termination into a single unbiased
// per-pixel radiance estimate.
package integrator

import (
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
)

// Scene is everything the integrator needs from the renderable world. A
// concrete *scene.Scene satisfies it; the interface here avoids importing
// the scene package directly, which would otherwise depend back on the
// integrator for its camera-driven render loop.
type Scene interface {
	// Hit finds the closest intersection along ray within [tMin, tMax].
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// SampleLight draws a point on one emissive primitive, chosen with
	// probability proportional to its area, and reports the union's mixture
	// PDF for that direction.
	SampleLight(point core.Vec3, selector float64, sample core.Vec2) (geometry.LightSample, bool)

	// LightPDF returns the mixture solid-angle PDF of having sampled
	// direction from point via SampleLight, used by MIS when a path reaches
	// a light through BSDF or phase-function sampling instead.
	LightPDF(point core.Vec3, direction core.Vec3) float64

	// BackgroundMedium is the participating medium that fills the scene
	// outside every object (Vacuum in the common case).
	BackgroundMedium() medium.Medium

	// Background returns the radiance seen by a ray that escapes the scene
	// entirely.
	Background(ray core.Ray) core.Vec3
}
