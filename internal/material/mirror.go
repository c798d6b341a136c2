package material

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// PerfectReflective is an ideal mirror: a delta-distribution material that
// always reflects incoming light across the shading normal with no energy
// loss beyond the given tint.
type PerfectReflective struct {
	Albedo core.Vec3
}

// NewPerfectReflective creates a mirror material with the given reflectance tint.
func NewPerfectReflective(albedo core.Vec3) *PerfectReflective {
	return &PerfectReflective{Albedo: albedo}
}

// Scatter reflects rayIn across the shading normal. ok is false if the
// reflection would point back into the surface, which only happens for a
// degenerate (near-tangent) normal.
func (m *PerfectReflective) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	scattered := core.NewRay(hit.Point, reflected)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
		PDF:         0, // delta distribution
	}, reflected.Dot(hit.Normal) > 0
}

// Evaluate always returns zero: a delta material has no density to evaluate
// off the single direction Scatter can produce.
func (m *PerfectReflective) Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF reports a delta distribution; the integrator must treat this material
// specially rather than trying to combine it with light sampling via MIS.
func (m *PerfectReflective) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0, true
}
