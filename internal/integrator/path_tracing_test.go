package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
)

// testScene adapts a geometry.ObjectUnion and a flat background color into
// the integrator.Scene interface, so these tests can build small scenes
// without going through internal/scene.
type testScene struct {
	union      *geometry.ObjectUnion
	background core.Vec3
	bgMedium   medium.Medium
}

func newTestScene(shapes []geometry.Shape, background core.Vec3) *testScene {
	return &testScene{
		union:      geometry.NewObjectUnion(shapes, false),
		background: background,
		bgMedium:   &medium.Vacuum{},
	}
}

func (s *testScene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.union.Hit(ray, tMin, tMax)
}

func (s *testScene) SampleLight(point core.Vec3, selector float64, sample core.Vec2) (geometry.LightSample, bool) {
	return s.union.SampleLight(point, selector, sample)
}

func (s *testScene) LightPDF(point core.Vec3, direction core.Vec3) float64 {
	return s.union.PDFLight(point, direction)
}

func (s *testScene) BackgroundMedium() medium.Medium {
	return s.bgMedium
}

func (s *testScene) Background(ray core.Ray) core.Vec3 {
	return s.background
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.MaxDepth = 8
	cfg.ForceRouletteDepth = 3
	return cfg
}

func TestPathTracing_NoHit_ReturnsBackground(t *testing.T) {
	scene := newTestScene(nil, core.NewVec3(0.5, 0.6, 0.7))
	pt := NewPathTracingIntegrator(testConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	got := pt.Li(ray, scene, sampler)

	if math.Abs(got.X-0.5) > 1e-9 || math.Abs(got.Y-0.6) > 1e-9 || math.Abs(got.Z-0.7) > 1e-9 {
		t.Errorf("Li() = %+v, want background (0.5, 0.6, 0.7)", got)
	}
}

func TestPathTracing_DiffuseSphereUnderLight_ReceivesPositiveRadiance(t *testing.T) {
	sphereMat := material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 1.0, sphereMat)

	lightMat := material.NewLightEmitter(nil, core.NewVec3(1, 1, 1), 15)
	// Centered above the visible point (0,0,-1), whose normal is +z, so the
	// light lies in front of that point's tangent plane.
	light := geometry.NewRectangle(core.NewVec3(0, 3, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 2, 2, lightMat)

	scene := newTestScene([]geometry.Shape{sphere, light}, core.Vec3{})
	pt := NewPathTracingIntegrator(testConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	sum := core.Vec3{}
	const samples = 64
	for i := 0; i < samples; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		sum = sum.Add(pt.Li(ray, scene, sampler))
	}
	mean := sum.Divide(samples)

	if mean.MaxComponent() <= 0 {
		t.Fatalf("expected positive radiance from a diffuse sphere under a light, got %+v", mean)
	}
}

func TestPathTracing_MirrorReflectsBackgroundUnchanged(t *testing.T) {
	mirror := material.NewPerfectReflective(core.NewVec3(1, 1, 1))
	plane := geometry.NewRectangle(core.NewVec3(0, 0, -2), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 10, 10, mirror)

	background := core.NewVec3(0.2, 0.4, 0.9)
	scene := newTestScene([]geometry.Shape{plane}, background)
	pt := NewPathTracingIntegrator(testConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.Li(ray, scene, sampler)

	if math.Abs(got.X-background.X) > 1e-6 || math.Abs(got.Y-background.Y) > 1e-6 || math.Abs(got.Z-background.Z) > 1e-6 {
		t.Errorf("mirror-reflected background = %+v, want %+v", got, background)
	}
}

func TestPathTracing_EmitterHitDirectly_ContributesFullEmission(t *testing.T) {
	lightMat := material.NewLightEmitter(material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)), core.NewVec3(2, 2, 2), 3)
	light := geometry.NewSphere(core.NewVec3(0, 0, -2), 1.0, lightMat)

	cfg := testConfig()
	cfg.EnableNEE = false
	scene := newTestScene([]geometry.Shape{light}, core.Vec3{})
	pt := NewPathTracingIntegrator(cfg)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.Li(ray, scene, sampler)

	want := core.NewVec3(2, 2, 2).Multiply(3)
	if math.Abs(got.X-want.X) > 1e-9 {
		t.Errorf("directly-hit emitter radiance = %+v, want %+v", got, want)
	}
}

func TestCrossMediumBoundary_EntryPushesExitPops(t *testing.T) {
	interior := medium.NewBeersLaw(core.NewVec3(1, 1, 1))
	glass := material.NewTransparentDielectricWithMedium(1.5, interior)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, glass)

	stack := medium.NewStack(&medium.Vacuum{}, 50)
	pt := NewPathTracingIntegrator(testConfig())

	entryHit := &material.HitRecord{
		Point:     core.NewVec3(0, 0, 1),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
		Material:  glass,
		Shape:     sphere,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	refracted := core.NewRay(entryHit.Point, core.NewVec3(0, 0, -1))

	pt.crossMediumBoundary(stack, rayIn, refracted, entryHit)
	if stack.Depth() != 2 {
		t.Fatalf("after entering the sphere, stack depth = %d, want 2", stack.Depth())
	}
	if stack.Current() != interior {
		t.Fatalf("after entering the sphere, current medium is not the interior medium")
	}

	exitHit := &material.HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: false,
		Material:  glass,
		Shape:     sphere,
	}
	exitRayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	exitRay := core.NewRay(exitHit.Point, core.NewVec3(0, 0, -1))

	pt.crossMediumBoundary(stack, exitRayIn, exitRay, exitHit)
	if stack.Depth() != 1 {
		t.Fatalf("after exiting the sphere, stack depth = %d, want 1", stack.Depth())
	}
}

func TestCrossMediumBoundary_ReflectionDoesNotCrossBoundary(t *testing.T) {
	interior := medium.NewBeersLaw(core.NewVec3(1, 1, 1))
	glass := material.NewTransparentDielectricWithMedium(1.5, interior)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, glass)

	stack := medium.NewStack(&medium.Vacuum{}, 50)
	pt := NewPathTracingIntegrator(testConfig())

	hit := &material.HitRecord{
		Point:     core.NewVec3(0, 0, 1),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
		Material:  glass,
		Shape:     sphere,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	reflected := core.NewRay(hit.Point, core.NewVec3(0, 0, 1)) // bounced straight back

	pt.crossMediumBoundary(stack, rayIn, reflected, hit)
	if stack.Depth() != 1 {
		t.Fatalf("a reflected ray should not cross the boundary, stack depth = %d, want 1", stack.Depth())
	}
}

func TestPathTracing_ScatteringMediumInBackground_DoesNotPanicAndScatters(t *testing.T) {
	lightMat := material.NewLightEmitter(nil, core.NewVec3(1, 1, 1), 20)
	light := geometry.NewSphere(core.NewVec3(0, 0, -8), 2.0, lightMat)

	scene := newTestScene([]geometry.Shape{light}, core.Vec3{})
	scene.bgMedium = medium.NewHomogeneousScattering(
		core.NewVec3(0.01, 0.01, 0.01),
		core.NewVec3(0.5, 0.5, 0.5),
		0,
	)

	pt := NewPathTracingIntegrator(testConfig())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 32; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		got := pt.Li(ray, scene, sampler)
		if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
			t.Fatalf("Li() produced NaN radiance on seed %d: %+v", i, got)
		}
		if got.X < 0 || got.Y < 0 || got.Z < 0 {
			t.Fatalf("Li() produced negative radiance on seed %d: %+v", i, got)
		}
	}
}

func TestPowerHeuristic_WeightsSumToOneForTwoValidStrategies(t *testing.T) {
	w1 := core.PowerHeuristic(1, 0.3, 1, 0.7)
	w2 := core.PowerHeuristic(1, 0.7, 1, 0.3)
	if math.Abs((w1+w2)-1.0) > 1e-9 {
		t.Errorf("w1+w2 = %f, want 1", w1+w2)
	}
}
