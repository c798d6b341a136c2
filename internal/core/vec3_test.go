package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{
			name:     "straight-on reflects back",
			v:        NewVec3(0, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "45 degree incidence",
			v:        NewVec3(1, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Reflect(tt.n)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.v, tt.n, result, tt.expected)
			}
		})
	}
}

func TestVec3_Reflect_PreservesLength(t *testing.T) {
	v := NewVec3(0.3, -0.8, 0.2)
	n := NewVec3(0, 1, 0)
	result := v.Reflect(n)
	if math.Abs(result.Length()-v.Length()) > 1e-9 {
		t.Errorf("reflection changed vector length: %v -> %v", v.Length(), result.Length())
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// A ray grazing a surface going from dense to sparse medium exceeds the
	// critical angle and must report !ok.
	v := NewVec3(1, -0.05, 0).Normalize()
	n := NewVec3(0, 1, 0)
	_, ok := Refract(v, n, 1.5) // glass -> air, etai/etat = n2/n1 = 1.5
	if ok {
		t.Error("expected total internal reflection at grazing angle")
	}
}

func TestRefract_NormalIncidenceUnbent(t *testing.T) {
	v := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	refracted, ok := Refract(v, n, 1.0/1.5)
	if !ok {
		t.Fatal("expected refraction to succeed at normal incidence")
	}
	if refracted.Subtract(v).Length() > 1e-9 {
		t.Errorf("normal-incidence refraction should be unbent, got %v", refracted)
	}
}

func TestPowerHeuristic_SymmetricEqualPDFs(t *testing.T) {
	w := PowerHeuristic(1, 0.5, 1, 0.5)
	if math.Abs(w-0.5) > 1e-9 {
		t.Errorf("equal PDFs should split weight evenly, got %v", w)
	}
}

func TestPowerHeuristic_ZeroPDFsNoNaN(t *testing.T) {
	w := PowerHeuristic(1, 0, 1, 0)
	if math.IsNaN(w) {
		t.Error("PowerHeuristic(0,0) produced NaN")
	}
	if w != 0 {
		t.Errorf("expected 0 weight for two zero PDFs, got %v", w)
	}
}

func TestNewRay_PermutationPutsLargestAxisInKz(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if r.kz != 1 {
		t.Errorf("expected axis 1 (largest magnitude) in kz, got kx=%d ky=%d kz=%d", r.kx, r.ky, r.kz)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(1, 0, 0))
	p := r.At(2)
	expected := NewVec3(3, 1, 1)
	if p.Subtract(expected).Length() > 1e-9 {
		t.Errorf("At(2) = %v, want %v", p, expected)
	}
}
