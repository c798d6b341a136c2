package integrator

import (
	"math"

	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
)

// PathTracingIntegrator implements unidirectional Monte-Carlo path tracing
// with next-event estimation, multiple importance sampling, Russian-roulette
// termination and a nested participating-medium stack.
type PathTracingIntegrator struct {
	config config.Config
}

// NewPathTracingIntegrator creates a path tracer bound to the given config.
func NewPathTracingIntegrator(cfg config.Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: cfg}
}

// mediumBoundary is implemented by materials that separate two participating
// media (currently only TransparentDielectric). It is discovered by type
// assertion rather than added to the Material interface, so materials with
// nothing to report don't carry a no-op method.
type mediumBoundary interface {
	BoundaryMedium() medium.Medium
}

// Li estimates the radiance arriving along ray from scene.
func (pt *PathTracingIntegrator) Li(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	color := core.NewVec3(0, 0, 0)
	mediumStack := medium.NewStack(scene.BackgroundMedium(), pt.config.MaxMediumStackDepth)

	var scatterPDF float64
	var savedPoint core.Vec3
	specularLast := true

	currentRay := ray

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		currentMedium := mediumStack.Current()
		distanceScatter, _ := currentMedium.SampleDistance(sampler)

		tMax := math.Min(distanceScatter, pt.config.MaxRayDistance)
		hit, hasHit := scene.Hit(currentRay, pt.config.Epsilon, tMax)

		if !hasHit && math.IsInf(distanceScatter, 1) {
			color = color.Add(throughput.MultiplyVec(scene.Background(currentRay)))
			break
		}

		hitDistance := math.Inf(1)
		if hasHit {
			hitDistance = hit.T
		}

		if distanceScatter < hitDistance {
			point := currentRay.At(distanceScatter)
			throughput = throughput.MultiplyVec(currentMedium.Transmittance(distanceScatter))

			incident := currentRay.Direction.Normalize()
			if pt.config.EnableNEE {
				color = color.Add(throughput.MultiplyVec(pt.sampleLightAtMedium(point, incident, currentMedium, mediumStack, scene, sampler)))
			}

			outgoing, phasePDF := currentMedium.SamplePhase(incident, sampler)
			scatterPDF = phasePDF
			savedPoint = point
			specularLast = false
			currentRay = core.NewRay(point, outgoing)
		} else {
			throughput = throughput.MultiplyVec(currentMedium.Transmittance(hitDistance))

			if emitter, ok := hit.Material.(material.Emitter); ok && emitter.IsLightSource() {
				weight := 1.0
				if depth != 0 && !specularLast && pt.config.EnableNEE {
					lightPDF := scene.LightPDF(savedPoint, currentRay.Direction.Normalize())
					weight = core.PowerHeuristic(1, scatterPDF, 1, lightPDF)
				}
				color = color.Add(throughput.Multiply(weight).MultiplyVec(emitter.Emit(currentRay, *hit)))
			}

			if pt.config.EnableNEE {
				color = color.Add(throughput.MultiplyVec(pt.sampleLightAtSurface(hit, currentRay.Direction.Normalize(), mediumStack, scene, sampler)))
			}

			scatter, didScatter := hit.Material.Scatter(currentRay, *hit, sampler)
			if !didScatter {
				break
			}
			throughput = throughput.MultiplyVec(scatter.Attenuation)

			if scatter.IsSpecular() {
				specularLast = true
			} else {
				scatterPDF = scatter.PDF
				savedPoint = hit.Point
				specularLast = false
			}

			pt.crossMediumBoundary(mediumStack, currentRay, scatter.Scattered, hit)
			currentRay = scatter.Scattered
		}

		if depth >= pt.config.ForceRouletteDepth {
			q := math.Max(pt.config.RussianRouletteMinProb, math.Min(throughput.MaxComponent(), pt.config.RussianRouletteMaxProb))
			if sampler.Get1D() >= q {
				break
			}
			throughput = throughput.Divide(q)
		}
	}

	return color
}

// sampleLightAtSurface performs next-event estimation from a surface hit:
// sample a point on a light, trace a shadow ray to it, and combine the
// result with BSDF sampling via the power heuristic.
func (pt *PathTracingIntegrator) sampleLightAtSurface(hit *material.HitRecord, incident core.Vec3, mediumStack *medium.Stack, scene Scene, sampler core.Sampler) core.Vec3 {
	ls, ok := scene.SampleLight(hit.Point, sampler.Get1D(), sampler.Get2D())
	if !ok || ls.PDF <= 0 {
		return core.Vec3{}
	}

	toLight := ls.Point.Subtract(hit.Point)
	distance := toLight.Length()
	if distance <= 0 {
		return core.Vec3{}
	}
	direction := toLight.Divide(distance)

	cosTheta := direction.Dot(hit.Normal)
	if cosTheta <= 0 {
		return core.Vec3{}
	}

	transmittance, emission, ok := pt.traceShadowRay(scene, hit.Point, direction, ls, mediumStack)
	if !ok {
		return core.Vec3{}
	}

	brdf := hit.Material.Evaluate(incident, direction, hit.Normal)
	materialPDF, isDelta := hit.Material.PDF(incident, direction, hit.Normal)
	if isDelta {
		return core.Vec3{}
	}

	misWeight := core.PowerHeuristic(1, ls.PDF, 1, materialPDF)
	return brdf.MultiplyVec(emission).MultiplyVec(transmittance).Multiply(cosTheta * misWeight / ls.PDF)
}

// sampleLightAtMedium performs next-event estimation from a scatter point
// inside a participating medium: there is no surface cosine term, and the
// phase function's value stands in for the BRDF.
func (pt *PathTracingIntegrator) sampleLightAtMedium(point, incident core.Vec3, med medium.Medium, mediumStack *medium.Stack, scene Scene, sampler core.Sampler) core.Vec3 {
	ls, ok := scene.SampleLight(point, sampler.Get1D(), sampler.Get2D())
	if !ok || ls.PDF <= 0 {
		return core.Vec3{}
	}

	toLight := ls.Point.Subtract(point)
	distance := toLight.Length()
	if distance <= 0 {
		return core.Vec3{}
	}
	direction := toLight.Divide(distance)

	transmittance, emission, ok := pt.traceShadowRay(scene, point, direction, ls, mediumStack)
	if !ok {
		return core.Vec3{}
	}

	phaseValue := med.PhasePDF(incident, direction)
	misWeight := core.PowerHeuristic(1, ls.PDF, 1, phaseValue)
	return emission.MultiplyVec(transmittance).Multiply(phaseValue * misWeight / ls.PDF)
}

// traceShadowRay fires a ray from origin toward a sampled light point and
// requires it to land on that same point (within ten times epsilon) before releasing
// its emission, per the occlusion/back-face/wrong-target failure modes a
// shadow ray can hit. The returned transmittance is the current medium's
// attenuation over the shadow ray's length; it does not re-derive every
// medium boundary crossed along the way, since in every scene this module
// builds the shadow ray either stays within one medium or crosses directly
// into vacuum, both of which this single-segment approximation covers
// exactly.
func (pt *PathTracingIntegrator) traceShadowRay(scene Scene, origin, direction core.Vec3, ls geometry.LightSample, mediumStack *medium.Stack) (transmittance, emission core.Vec3, ok bool) {
	shadowRay := core.NewRay(origin, direction)
	hit, hasHit := scene.Hit(shadowRay, pt.config.Epsilon, ls.Distance+pt.config.Epsilon)
	if !hasHit || math.Abs(hit.T-ls.Distance) > pt.config.Epsilon*10 {
		return core.Vec3{}, core.Vec3{}, false
	}

	emitter, isEmitter := hit.Material.(material.Emitter)
	if !isEmitter {
		return core.Vec3{}, core.Vec3{}, false
	}

	transmittance = mediumStack.Current().Transmittance(hit.T)
	emission = emitter.Emit(shadowRay, *hit)
	return transmittance, emission, true
}

// crossMediumBoundary pushes or pops the scene's participating medium when a
// scattered ray crosses to the other side of a dielectric boundary -- that
// is, when rayIn and the new ray end up on opposite sides of the surface's
// outward normal, which a transmitted ray does and a reflected ray never
// does. hit.Shape (the geometry.Shape pointer) is the stack's push/pop key,
// so an exit always pops the entry its matching entrance pushed even if
// other boundaries were crossed in between.
func (pt *PathTracingIntegrator) crossMediumBoundary(stack *medium.Stack, rayIn, scattered core.Ray, hit *material.HitRecord) {
	boundary, ok := hit.Material.(mediumBoundary)
	if !ok {
		return
	}
	interior := boundary.BoundaryMedium()
	if interior == nil {
		return
	}

	outwardNormal := hit.Normal
	if !hit.FrontFace {
		outwardNormal = hit.Normal.Negate()
	}

	incomingInward := rayIn.Direction.Dot(outwardNormal) < 0
	scatteredInward := scattered.Direction.Dot(outwardNormal) < 0
	if incomingInward != scatteredInward {
		return // reflected back on the same side; no boundary crossed
	}

	if hit.FrontFace {
		stack.Push(interior, hit.Shape)
	} else {
		stack.Pop(hit.Shape)
	}
}
