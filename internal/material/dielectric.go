package material

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
)

// TransparentDielectric is a clear refractive material like glass or water:
// at each hit it either reflects or refracts, chosen stochastically by the
// Fresnel reflectance (Schlick's approximation) so that, in expectation, the
// path correctly splits energy between the two events. Interior carries an
// optional participating medium (nil for clear glass with no fog/absorption).
type TransparentDielectric struct {
	RefractiveIndex float64
	Interior        medium.Medium
}

// NewTransparentDielectric creates a dielectric material with the given
// index of refraction (e.g. 1.5 for glass, 1.33 for water) and no interior
// medium.
func NewTransparentDielectric(refractiveIndex float64) *TransparentDielectric {
	return &TransparentDielectric{RefractiveIndex: refractiveIndex}
}

// NewTransparentDielectricWithMedium creates a dielectric boundary enclosing
// a participating medium, e.g. absorbing colored glass.
func NewTransparentDielectricWithMedium(refractiveIndex float64, interior medium.Medium) *TransparentDielectric {
	return &TransparentDielectric{RefractiveIndex: refractiveIndex, Interior: interior}
}

// BoundaryMedium returns the medium enclosed by this surface, or nil if it
// bounds vacuum. The integrator's medium stack pushes/pops it on crossing.
func (d *TransparentDielectric) BoundaryMedium() medium.Medium {
	return d.Interior
}

// Scatter chooses reflection or refraction at the hit point.
func (d *TransparentDielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering the material
	} else {
		refractionRatio = d.RefractiveIndex // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)

	refracted, ok := core.Refract(unitDirection, hit.Normal, refractionRatio)

	var direction core.Vec3
	attenuation := core.NewVec3(1, 1, 1)
	if !ok || schlickReflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = refracted
		// Radiance scales by (n2/n1)^2 when a ray crosses into a medium of
		// different refractive index.
		scale := 1.0 / (refractionRatio * refractionRatio)
		attenuation = attenuation.Multiply(scale)
	}

	scattered := core.NewRay(hit.Point, direction)
	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         0, // delta distribution
	}, true
}

// Evaluate always returns zero: reflection/refraction is a delta distribution.
func (d *TransparentDielectric) Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF reports a delta distribution.
func (d *TransparentDielectric) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0, true
}

// schlickReflectance approximates the Fresnel reflectance at a dielectric
// boundary, used to stochastically choose between reflection and refraction.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
