package medium

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

// Vacuum is the trivial medium: no absorption, no scattering, full
// transmittance. It is the background medium of a scene with no fog or
// enclosing glass, and the medium a ray returns to after exiting the last
// object it was inside.
type Vacuum struct{}

func (Vacuum) SampleDistance(sampler core.Sampler) (float64, float64) {
	return math.Inf(1), 1
}

func (Vacuum) Transmittance(distance float64) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}

func (Vacuum) ScatteringAlbedo() core.Vec3 {
	return core.Vec3{}
}

func (Vacuum) IsScattering() bool {
	return false
}

func (Vacuum) SamplePhase(incident core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	return incident, 1
}

func (Vacuum) PhasePDF(incident, outgoing core.Vec3) float64 {
	return 0
}
