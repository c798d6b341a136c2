package material

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

// Microfacet is a GGX-distributed rough-specular material blended with a
// diffuse lobe, the same "partly shiny, partly matte" surface every
// cook-torrance-style renderer needs for plastics, painted metal and the
// like. PercentageDiffuse controls the stochastic choice between the two
// lobes at scatter time (0 = pure specular, 1 = pure diffuse); both lobes
// are evaluated and combined when computing BRDF/PDF so MIS against light
// sampling stays consistent regardless of which lobe Scatter happened to draw.
type Microfacet struct {
	Albedo            ValueMap
	Roughness         ScalarMap // GGX alpha, in (0, 1]; smaller is shinier
	PercentageDiffuse ScalarMap // fraction of scatter events routed to the diffuse lobe
}

// NewMicrofacet creates a microfacet material with a solid albedo and a
// uniform roughness/percentage-diffuse. roughness is clamped to a small
// positive floor so the GGX distribution never degenerates to a delta
// function (use PerfectReflective for a true mirror).
func NewMicrofacet(albedo core.Vec3, roughness, percentageDiffuse float64) *Microfacet {
	return NewTexturedMicrofacet(NewConstantMap(albedo), NewConstantScalarMap(floorRoughness(roughness)), NewConstantScalarMap(clamp01(percentageDiffuse)))
}

// NewTexturedMicrofacet creates a microfacet material whose albedo,
// roughness and diffuse/specular mix all vary spatially, each sampled from
// its own map at the hit's (u,v) and world point.
func NewTexturedMicrofacet(albedo ValueMap, roughness, percentageDiffuse ScalarMap) *Microfacet {
	return &Microfacet{
		Albedo:            albedo,
		Roughness:         roughness,
		PercentageDiffuse: percentageDiffuse,
	}
}

func floorRoughness(roughness float64) float64 {
	if roughness < 0.02 {
		return 0.02
	}
	return roughness
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Scatter stochastically picks the diffuse or the GGX specular lobe, then
// importance-samples within it.
func (m *Microfacet) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	uv := core.NewVec2(hit.U, hit.V)
	percentageDiffuse := clamp01(m.PercentageDiffuse.Evaluate(uv, hit.Point))
	roughness := floorRoughness(m.Roughness.Evaluate(uv, hit.Point))

	var direction core.Vec3
	if sampler.Get1D() < percentageDiffuse {
		direction = core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	} else {
		direction = sampleGGX(roughness, rayIn.Direction.Negate().Normalize(), hit.Normal, sampler.Get2D())
	}

	if direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	scattered := core.NewRay(hit.Point, direction)
	pdf, _ := m.PDF(rayIn.Direction, direction, hit.Normal)
	if pdf <= 0 {
		return ScatterResult{}, false
	}

	brdf := m.Evaluate(rayIn.Direction, direction, hit.Normal)
	cosTheta := direction.Dot(hit.Normal)
	attenuation := brdf.Multiply(cosTheta / pdf)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation, PDF: pdf}, true
}

// Evaluate returns the combined diffuse + GGX-specular BRDF value.
func (m *Microfacet) Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	cosO := outgoingDir.Dot(normal)
	if cosO <= 0 {
		return core.Vec3{}
	}
	wo := incomingDir.Negate().Normalize()
	cosI := wo.Dot(normal)
	if cosI <= 0 {
		return core.Vec3{}
	}

	albedo := m.Albedo.Evaluate(core.Vec2{}, core.Vec3{})
	diffuse := albedo.Multiply(1.0 / math.Pi)
	roughness := floorRoughness(m.Roughness.Evaluate(core.Vec2{}, core.Vec3{}))
	percentageDiffuse := clamp01(m.PercentageDiffuse.Evaluate(core.Vec2{}, core.Vec3{}))

	half := wo.Add(outgoingDir).Normalize()
	nDotH := math.Max(normal.Dot(half), 0)
	d := ggxDistribution(nDotH, roughness)
	g := smithGGXVisibility(cosI, cosO, roughness)
	fresnel := schlickReflectance(math.Max(wo.Dot(half), 0), 1.0) // achromatic Fresnel floor
	specular := core.NewVec3(1, 1, 1).Multiply(d * g * fresnel)

	return diffuse.Multiply(percentageDiffuse).Add(specular.Multiply(1 - percentageDiffuse))
}

// PDF returns the mixture PDF of the diffuse and GGX lobes, weighted the
// same way Scatter chooses between them.
func (m *Microfacet) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	cosO := outgoingDir.Dot(normal)
	if cosO <= 0 {
		return 0, false
	}
	diffusePDF := core.CosineHemispherePDF(cosO)
	roughness := floorRoughness(m.Roughness.Evaluate(core.Vec2{}, core.Vec3{}))
	percentageDiffuse := clamp01(m.PercentageDiffuse.Evaluate(core.Vec2{}, core.Vec3{}))

	wo := incomingDir.Negate().Normalize()
	half := wo.Add(outgoingDir).Normalize()
	nDotH := math.Max(normal.Dot(half), 0)
	voDotH := math.Max(wo.Dot(half), 0)
	specPDF := 0.0
	if voDotH > 0 {
		specPDF = ggxDistribution(nDotH, roughness) * nDotH / (4 * voDotH)
	}

	return percentageDiffuse*diffusePDF + (1-percentageDiffuse)*specPDF, false
}

// sampleGGX importance-samples the GGX half-vector distribution around
// normal and reflects wo across it to get the outgoing direction.
func sampleGGX(roughness float64, wo, normal core.Vec3, sample core.Vec2) core.Vec3 {
	a := roughness
	phi := 2 * math.Pi * sample.X
	cosTheta := math.Sqrt((1 - sample.Y) / (1 + (a*a-1)*sample.Y))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	tangent, bitangent := localBasis(normal)
	half := tangent.Multiply(sinTheta * math.Cos(phi)).
		Add(bitangent.Multiply(sinTheta * math.Sin(phi))).
		Add(normal.Multiply(cosTheta))

	return wo.Negate().Reflect(half)
}

func localBasis(normal core.Vec3) (core.Vec3, core.Vec3) {
	var nt core.Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = core.NewVec3(0, 1, 0)
	} else {
		nt = core.NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)
	return tangent, bitangent
}

// ggxDistribution is the Trowbridge-Reitz normal distribution function.
func ggxDistribution(nDotH, roughness float64) float64 {
	a2 := roughness * roughness
	denom := nDotH*nDotH*(a2-1) + 1
	if denom <= 0 {
		return 0
	}
	return a2 / (math.Pi * denom * denom)
}

// smithGGXVisibility is the height-correlated Smith masking-shadowing term
// divided by the 4*cosI*cosO normalization, so callers multiply it directly
// with D and F without a separate denominator.
func smithGGXVisibility(cosI, cosO, roughness float64) float64 {
	a2 := roughness * roughness
	lambdaI := cosO * math.Sqrt(cosI*cosI*(1-a2)+a2)
	lambdaO := cosI * math.Sqrt(cosO*cosO*(1-a2)+a2)
	denom := lambdaI + lambdaO
	if denom <= 0 {
		return 0
	}
	return 0.5 / denom
}
