package scene

import (
	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
	"github.com/JoarGunnarsson/pathtracer/internal/renderer"
)

// NewMediumBoxScene encloses a scattering fog inside a glass sphere sitting
// on a diffuse floor, lit from one side, exercising the integrator's
// in-medium scatter/NEE branch (phase-function sampling and phase-weighted
// shadow rays) rather than only the surface path HomogeneousScattering's
// other callers leave untouched.
func NewMediumBoxScene(cfg config.Config) *Scene {
	floor := groundRectangle(core.NewVec3(0, 0, 0), 30, material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7)))

	fog := medium.NewHomogeneousScattering(core.NewVec3(0.02, 0.02, 0.02), core.NewVec3(0.5, 0.5, 0.5), 0.0)
	enclosure := material.NewTransparentDielectricWithMedium(1.0, fog)
	sphere := geometry.NewSphere(core.NewVec3(0, 1.5, 0), 1.5, enclosure)

	lightMat := material.NewLightEmitter(nil, core.NewVec3(1, 0.95, 0.9), 20)
	light := geometry.NewRectangle(core.NewVec3(-4, 4, -2), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), 3, 3, lightMat)

	shapes := []geometry.Shape{floor, sphere, light}

	camera := renderer.NewCamera(
		core.NewVec3(0, 2, -7),
		core.NewVec3(0, -0.1, 1),
		core.NewVec3(0, 1, 0),
		cfg.Width, cfg.Height,
	)

	return New(shapes, camera, core.NewVec3(0.1, 0.1, 0.15), core.NewVec3(0.2, 0.2, 0.25), nil, false)
}
