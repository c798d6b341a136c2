package medium

import (
	"math"
	"testing"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

func TestBeersLaw_TransmittanceMatchesExponentialDecay(t *testing.T) {
	m := NewBeersLaw(core.NewVec3(1, 2, 3))
	tr := m.Transmittance(0.5)

	want := core.NewVec3(math.Exp(-0.5), math.Exp(-1), math.Exp(-1.5))
	if math.Abs(tr.X-want.X) > 1e-9 || math.Abs(tr.Y-want.Y) > 1e-9 || math.Abs(tr.Z-want.Z) > 1e-9 {
		t.Errorf("Transmittance(0.5) = %v, want %v", tr, want)
	}
}

func TestBeersLaw_NeverScatters(t *testing.T) {
	m := NewBeersLaw(core.NewVec3(1, 1, 1))
	if m.IsScattering() {
		t.Error("a purely absorbing medium must not scatter")
	}
	albedo := m.ScatteringAlbedo()
	if !albedo.IsZero() {
		t.Errorf("expected zero scattering albedo, got %v", albedo)
	}
}

func TestBeersLaw_TransmittanceDecreasesWithDistance(t *testing.T) {
	m := NewBeersLaw(core.NewVec3(2, 2, 2))
	near := m.Transmittance(1)
	far := m.Transmittance(10)
	if far.X >= near.X {
		t.Errorf("expected transmittance to decrease with distance: near=%v far=%v", near, far)
	}
}
