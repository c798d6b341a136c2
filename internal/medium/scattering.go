package medium

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

// HomogeneousScattering is a medium that both absorbs and scatters light,
// with a Henyey-Greenstein phase function (g=0 reduces to isotropic
// scattering). Free-flight distance is sampled exponentially using the mean
// extinction coefficient across channels, per the implementation note that
// a scalar sigma_t derived from the spectral coefficients is sufficient.
type HomogeneousScattering struct {
	AbsorptionCoefficient core.Vec3
	ScatteringCoefficient core.Vec3
	G                     float64 // Henyey-Greenstein asymmetry parameter, in (-1, 1)

	extinction core.Vec3
	sigmaT     float64
}

// NewHomogeneousScattering creates a scattering medium. g=0 is isotropic.
func NewHomogeneousScattering(absorption, scattering core.Vec3, g float64) *HomogeneousScattering {
	extinction := absorption.Add(scattering)
	return &HomogeneousScattering{
		AbsorptionCoefficient: absorption,
		ScatteringCoefficient: scattering,
		G:                     g,
		extinction:            extinction,
		sigmaT:                meanComponent(extinction),
	}
}

func (m *HomogeneousScattering) SampleDistance(sampler core.Sampler) (float64, float64) {
	if m.sigmaT <= 0 {
		return math.Inf(1), 1
	}
	xi := sampler.Get1D()
	distance := -math.Log(1-xi) / m.sigmaT
	pdf := m.sigmaT * math.Exp(-m.sigmaT*distance)
	return distance, pdf
}

func (m *HomogeneousScattering) Transmittance(distance float64) core.Vec3 {
	return core.NewVec3(
		math.Exp(-m.extinction.X*distance),
		math.Exp(-m.extinction.Y*distance),
		math.Exp(-m.extinction.Z*distance),
	)
}

func (m *HomogeneousScattering) ScatteringAlbedo() core.Vec3 {
	return core.NewVec3(
		safeRatio(m.ScatteringCoefficient.X, m.extinction.X),
		safeRatio(m.ScatteringCoefficient.Y, m.extinction.Y),
		safeRatio(m.ScatteringCoefficient.Z, m.extinction.Z),
	)
}

func (m *HomogeneousScattering) IsScattering() bool {
	return m.ScatteringCoefficient.X > 0 || m.ScatteringCoefficient.Y > 0 || m.ScatteringCoefficient.Z > 0
}

// SamplePhase draws a direction from the Henyey-Greenstein phase function
// around the incident direction's forward axis.
func (m *HomogeneousScattering) SamplePhase(incident core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	sample := sampler.Get2D()
	cosTheta := sampleHGCosine(m.G, sample.X)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * sample.Y

	tangent, bitangent := orthonormalBasis(incident)
	direction := tangent.Multiply(sinTheta * math.Cos(phi)).
		Add(bitangent.Multiply(sinTheta * math.Sin(phi))).
		Add(incident.Multiply(cosTheta))

	return direction.Normalize(), henyeyGreenstein(m.G, cosTheta)
}

func (m *HomogeneousScattering) PhasePDF(incident, outgoing core.Vec3) float64 {
	return henyeyGreenstein(m.G, incident.Dot(outgoing))
}

// henyeyGreenstein evaluates the HG phase function at the given cosine
// between incident and outgoing directions.
func henyeyGreenstein(g, cosTheta float64) float64 {
	if math.Abs(g) < 1e-3 {
		return 1 / (4 * math.Pi)
	}
	denom := 1 + g*g - 2*g*cosTheta
	return (1 - g*g) / (4 * math.Pi * denom * math.Sqrt(math.Max(denom, 1e-12)))
}

// sampleHGCosine draws cos(theta) from the Henyey-Greenstein distribution
// via its closed-form inverse CDF.
func sampleHGCosine(g, xi float64) float64 {
	if math.Abs(g) < 1e-3 {
		return 1 - 2*xi
	}
	sq := (1 - g*g) / (1 - g + 2*g*xi)
	return (1 + g*g - sq*sq) / (2 * g)
}

func safeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// orthonormalBasis builds a (tangent, bitangent) pair perpendicular to w,
// mirroring core.SampleCone's construction for a local phase-sampling frame.
func orthonormalBasis(w core.Vec3) (core.Vec3, core.Vec3) {
	var nt core.Vec3
	if math.Abs(w.X) > 0.1 {
		nt = core.NewVec3(0, 1, 0)
	} else {
		nt = core.NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(w).Normalize()
	bitangent := w.Cross(tangent)
	return tangent, bitangent
}
