package material

import (
	"math/rand"
	"testing"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

func TestPerfectReflective_ReflectsAcrossNormal(t *testing.T) {
	m := NewPerfectReflective(core.NewVec3(1, 1, 1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(1, -1, 0).Normalize())

	result, ok := m.Scatter(rayIn, hit, sampler)
	if !ok {
		t.Fatal("mirror reflection off a front-facing surface should succeed")
	}
	want := core.NewVec3(1, 1, 0).Normalize()
	if result.Scattered.Direction.Subtract(want).Length() > 1e-9 {
		t.Errorf("reflected direction = %v, want %v", result.Scattered.Direction, want)
	}
	if result.PDF != 0 {
		t.Errorf("mirror scatter should report PDF 0 (delta), got %v", result.PDF)
	}
}

func TestPerfectReflective_PDFReportsDelta(t *testing.T) {
	m := NewPerfectReflective(core.NewVec3(1, 1, 1))
	_, isDelta := m.PDF(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	if !isDelta {
		t.Error("expected PerfectReflective to report a delta distribution")
	}
}
