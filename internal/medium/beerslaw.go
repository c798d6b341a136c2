package medium

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

// BeersLaw is a purely absorbing medium: light is attenuated exponentially
// with distance and never scatters, so a ray always continues straight to
// the next surface.
type BeersLaw struct {
	AbsorptionCoefficient core.Vec3
}

// NewBeersLaw creates a Beer's-law medium with the given absorption
// coefficient (one component per color channel).
func NewBeersLaw(absorptionCoefficient core.Vec3) *BeersLaw {
	return &BeersLaw{AbsorptionCoefficient: absorptionCoefficient}
}

func (b *BeersLaw) SampleDistance(sampler core.Sampler) (float64, float64) {
	return math.Inf(1), 1
}

func (b *BeersLaw) Transmittance(distance float64) core.Vec3 {
	return core.NewVec3(
		math.Exp(-b.AbsorptionCoefficient.X*distance),
		math.Exp(-b.AbsorptionCoefficient.Y*distance),
		math.Exp(-b.AbsorptionCoefficient.Z*distance),
	)
}

func (b *BeersLaw) ScatteringAlbedo() core.Vec3 {
	return core.Vec3{}
}

func (b *BeersLaw) IsScattering() bool {
	return false
}

func (b *BeersLaw) SamplePhase(incident core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	return incident, 1
}

func (b *BeersLaw) PhasePDF(incident, outgoing core.Vec3) float64 {
	return 0
}
