package material

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// HitRecord describes a ray-primitive intersection: where it happened, the
// shading normal there, and which material governs scattering from this
// point. Shapes in internal/geometry construct these; the integrator and
// materials consume them.
type HitRecord struct {
	Point     core.Vec3 // point of intersection
	Normal    core.Vec3 // shading normal, always on the side the ray arrived from
	T         float64   // ray parameter at the intersection
	FrontFace bool      // whether the ray hit the geometric front face
	U, V      float64   // surface parameterization, for ValueMap lookups
	Material  Material  // material attached to the primitive that was hit
	Shape     interface{} // the geometry.Shape pointer that was hit, used as the medium stack's push/pop key
}

// SetFaceNormal orients the shading normal to face back along the incoming
// ray and records which geometric face it came from.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is what a material produces when asked to sample an
// outgoing direction at a hit point.
type ScatterResult struct {
	Scattered   core.Ray  // the outgoing ray
	Attenuation core.Vec3 // throughput weight brdf*cos/pdf (delta materials fold the full weight in here)
	PDF         float64   // solid-angle PDF of Scattered.Direction; 0 for delta/specular scattering
}

// IsSpecular reports whether this scatter event came from a delta
// distribution (perfect mirror, ideal dielectric), which cannot be
// importance-combined with light sampling via MIS.
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// Material is the BSDF abstraction every primitive's surface implements.
// Scatter draws one outgoing direction (importance sampling); Evaluate and
// PDF let the integrator evaluate the same BSDF along a direction chosen by
// light sampling, which next-event estimation and MIS both require.
type Material interface {
	// Scatter samples an outgoing direction from the material's importance
	// distribution. ok is false if the material absorbs everything (e.g. the
	// ray sampled a direction under the surface).
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (result ScatterResult, ok bool)

	// Evaluate returns the BSDF value f(incoming, outgoing) at the hit's
	// normal, NOT including the cosine term. Delta materials return zero:
	// they have no density to evaluate off the sampled direction.
	Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3

	// PDF returns the solid-angle probability density of sampling
	// outgoingDir from Scatter, given incomingDir. isDelta is true for
	// delta-distribution materials, which have no meaningful finite PDF.
	PDF(incomingDir, outgoingDir, normal core.Vec3) (pdf float64, isDelta bool)
}

// Emitter is implemented by materials that emit radiance in addition to (or
// instead of) scattering it.
type Emitter interface {
	// Emit returns the radiance emitted toward rayIn.Origin along
	// -rayIn.Direction, or zero if this material does not emit in that
	// direction.
	Emit(rayIn core.Ray, hit HitRecord) core.Vec3

	// IsLightSource reports whether this material ever emits nonzero
	// radiance, used by ObjectUnion to decide which primitives belong in
	// the light-sampling distribution.
	IsLightSource() bool
}
