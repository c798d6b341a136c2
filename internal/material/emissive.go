package material

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// LightEmitter wraps a base material (typically Diffuse) and adds emission:
// the surface both scatters light according to Base and radiates its own
// light, front-face only, scaled by Intensity. ObjectUnion consults
// IsLightSource to decide which primitives belong in its light-sampling
// distribution.
type LightEmitter struct {
	Base      Material
	Emission  ValueMap
	Intensity float64
}

// NewLightEmitter wraps base with a uniform emission color and intensity.
func NewLightEmitter(base Material, emission core.Vec3, intensity float64) *LightEmitter {
	return &LightEmitter{Base: base, Emission: NewConstantMap(emission), Intensity: intensity}
}

// Scatter delegates to the base material, so a light source can also bounce
// incoming light like any other diffuse surface.
func (e *LightEmitter) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if e.Base == nil {
		return ScatterResult{}, false
	}
	return e.Base.Scatter(rayIn, hit, sampler)
}

// Evaluate delegates to the base material's BSDF.
func (e *LightEmitter) Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	if e.Base == nil {
		return core.Vec3{}
	}
	return e.Base.Evaluate(incomingDir, outgoingDir, normal)
}

// PDF delegates to the base material's PDF.
func (e *LightEmitter) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	if e.Base == nil {
		return 0, false
	}
	return e.Base.PDF(incomingDir, outgoingDir, normal)
}

// Emit returns the emitted radiance toward rayIn's origin, zero on the back
// face (emission does not wrap around a one-sided light).
func (e *LightEmitter) Emit(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace || e.Intensity <= 0 {
		return core.Vec3{}
	}
	return e.Emission.Evaluate(core.NewVec2(hit.U, hit.V), hit.Point).Multiply(e.Intensity)
}

// IsLightSource reports whether this material ever emits.
func (e *LightEmitter) IsLightSource() bool {
	return e.Intensity > 0
}
