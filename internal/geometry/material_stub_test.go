package geometry

import (
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
)

// dummyMaterial is a no-op material.Material used across geometry tests
// where the choice of material is irrelevant to the behavior under test.
type dummyMaterial struct{}

func (dummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func (dummyMaterial) Evaluate(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func (dummyMaterial) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return 0, false
}
