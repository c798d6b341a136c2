package material

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

// Diffuse is a perfectly Lambertian material: it scatters incoming light
// equally likely into any direction of the hemisphere above the surface,
// weighted by a ValueMap (constant color or texture) for its albedo.
type Diffuse struct {
	Albedo ValueMap
}

// NewDiffuse creates a diffuse material with a solid albedo color.
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: NewConstantMap(albedo)}
}

// NewTexturedDiffuse creates a diffuse material with a spatially varying albedo.
func NewTexturedDiffuse(albedo ValueMap) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter draws a cosine-weighted direction over the hemisphere around the
// shading normal, the importance-sampling distribution matched to a
// Lambertian BRDF so brdf * cosTheta / pdf collapses to the albedo exactly.
func (d *Diffuse) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.NewRay(hit.Point, direction)

	pdf := core.CosineHemispherePDF(direction.Dot(hit.Normal))
	albedo := d.Albedo.Evaluate(core.NewVec2(hit.U, hit.V), hit.Point)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: albedo,
		PDF:         pdf,
	}, true
}

// Evaluate returns the constant Lambertian BRDF value albedo/pi, zero below
// the surface.
func (d *Diffuse) Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	if outgoingDir.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	albedo := d.Albedo.Evaluate(core.Vec2{}, core.Vec3{})
	return albedo.Multiply(1.0 / math.Pi)
}

// PDF returns the cosine-weighted hemisphere density.
func (d *Diffuse) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	cosTheta := outgoingDir.Dot(normal)
	if cosTheta <= 0 {
		return 0, false
	}
	return core.CosineHemispherePDF(cosTheta), false
}
