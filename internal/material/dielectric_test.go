package material

import (
	"math/rand"
	"testing"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

func TestTransparentDielectric_AlwaysScatters(t *testing.T) {
	d := NewTransparentDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(9)))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	for i := 0; i < 50; i++ {
		result, ok := d.Scatter(rayIn, hit, sampler)
		if !ok {
			t.Fatal("dielectric should always produce a scattered ray (reflect or refract)")
		}
		if result.PDF != 0 {
			t.Errorf("dielectric scatter should be a delta distribution (PDF 0), got %v", result.PDF)
		}
	}
}

func TestTransparentDielectric_NormalIncidenceMostlyTransmits(t *testing.T) {
	d := NewTransparentDielectric(1.5)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	transmitted := 0
	const trials = 2000
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(11)))
	for i := 0; i < trials; i++ {
		result, _ := d.Scatter(rayIn, hit, sampler)
		if result.Scattered.Direction.Dot(hit.Normal) < 0 {
			transmitted++
		}
	}
	// at normal incidence, reflectance is low (<5%), so most samples should transmit
	if transmitted < trials/2 {
		t.Errorf("expected most normal-incidence samples to transmit, got %d/%d", transmitted, trials)
	}
}

func TestSchlickReflectance_GrazingAngleApproachesOne(t *testing.T) {
	r := schlickReflectance(0.0, 1.0/1.5)
	if r < 0.9 {
		t.Errorf("expected near-total reflectance at grazing angle, got %v", r)
	}
}
