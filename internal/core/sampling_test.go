package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphere_StaysInHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))
	normal := NewVec3(0, 1, 0)
	for i := 0; i < 1000; i++ {
		d := SampleCosineHemisphere(normal, sampler.Get2D())
		if d.Dot(normal) < -1e-9 {
			t.Fatalf("cosine-weighted sample %v fell below the hemisphere around %v", d, normal)
		}
		if math.Abs(d.Length()-1) > 1e-6 {
			t.Fatalf("sampled direction %v is not unit length (len=%v)", d, d.Length())
		}
	}
}

func TestSampleOnUnitSphere_IsUnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(2)))
	for i := 0; i < 1000; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-6 {
			t.Fatalf("sampled point %v is not on the unit sphere (len=%v)", d, d.Length())
		}
	}
}

func TestSampleCone_AtFullWidthCoversSphere(t *testing.T) {
	// cosTotalWidth = -1 means a half-angle of pi: samples may land anywhere.
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	dir := NewVec3(0, 0, 1)
	sawBackHemisphere := false
	for i := 0; i < 100; i++ {
		d := SampleCone(dir, -1, sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-6 {
			t.Fatalf("cone sample %v is not unit length", d)
		}
		if d.Z < 0 {
			sawBackHemisphere = true
		}
	}
	if !sawBackHemisphere {
		t.Errorf("no full-width cone sample landed in the hemisphere opposite the axis")
	}
}

func TestSampleCone_NarrowConeStaysNearAxis(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(4)))
	dir := NewVec3(0, 0, 1)
	cosTotalWidth := math.Cos(0.01) // very narrow cone
	for i := 0; i < 100; i++ {
		d := SampleCone(dir, cosTotalWidth, sampler.Get2D())
		if d.Dot(dir) < cosTotalWidth-1e-9 {
			t.Fatalf("cone sample %v fell outside the requested cone (cos=%v < %v)", d, d.Dot(dir), cosTotalWidth)
		}
	}
}

func TestSampleBarycentric_WeightsSumToOne(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(5)))
	for i := 0; i < 1000; i++ {
		u, v, w := SampleBarycentric(sampler.Get2D())
		if u < -1e-9 || v < -1e-9 || w < -1e-9 {
			t.Fatalf("negative barycentric weight: %v %v %v", u, v, w)
		}
		if math.Abs(u+v+w-1) > 1e-9 {
			t.Fatalf("barycentric weights do not sum to 1: %v+%v+%v=%v", u, v, w, u+v+w)
		}
	}
}

func TestCosineHemispherePDF_NegativeCosineIsZero(t *testing.T) {
	if pdf := CosineHemispherePDF(-0.5); pdf != 0 {
		t.Errorf("expected zero PDF below the hemisphere, got %v", pdf)
	}
}
