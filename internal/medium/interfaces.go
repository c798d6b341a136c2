// Package medium implements participating media: the volumes a ray travels
// through between surfaces, which may absorb, scatter, or both. A Medium
// never hits geometry itself; the integrator decides whether the sampled
// free-flight distance lands before or after the next surface.
package medium

import (
	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

// Medium is a homogeneous participating medium.
type Medium interface {
	// SampleDistance draws a free-flight distance along the ray, returning
	// the distance and its probability density at that distance. Vacuum
	// returns (+Inf, 1): the ray always reaches the next surface.
	SampleDistance(sampler core.Sampler) (distance, pdf float64)

	// Transmittance returns the fraction of radiance surviving absorption
	// and out-scattering over a segment of the given length.
	Transmittance(distance float64) core.Vec3

	// ScatteringAlbedo returns sigma_s/sigma_t componentwise; zero for a
	// purely absorbing (or vacuum) medium.
	ScatteringAlbedo() core.Vec3

	// IsScattering reports whether a scatter event is ever possible, so the
	// integrator can skip phase-function sampling for Vacuum/BeersLaw.
	IsScattering() bool

	// SamplePhase draws an outgoing direction from the phase function given
	// the incident direction, returning the direction and its PDF.
	SamplePhase(incident core.Vec3, sampler core.Sampler) (direction core.Vec3, pdf float64)

	// PhasePDF returns the phase function's PDF for a given incident/outgoing
	// direction pair, used by MIS when a path reaches a light via phase
	// sampling.
	PhasePDF(incident, outgoing core.Vec3) float64
}

func meanComponent(v core.Vec3) float64 {
	return (v.X + v.Y + v.Z) / 3
}
