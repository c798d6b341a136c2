package scene

import (
	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/renderer"
)

// NewSpheresScene builds a simple ground-plane-and-spheres scene exercising
// the full material set (diffuse, mirror, rough microfacet, glass) under a
// sky gradient and a single overhead area light, a good smoke test for a
// scene with no enclosing walls.
func NewSpheresScene(cfg config.Config) *Scene {
	ground := groundRectangle(core.NewVec3(0, 0, 0), 2000, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))

	diffuseSphere := geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2)))
	mirrorSphere := geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewPerfectReflective(core.NewVec3(0.95, 0.95, 0.95)))
	roughSphere := geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, material.NewMicrofacet(core.NewVec3(0.8, 0.6, 0.2), 0.25, 0.1))
	glassSphere := geometry.NewSphere(core.NewVec3(0, 1, 2.6), 1, material.NewTransparentDielectric(1.5))

	lightMat := material.NewLightEmitter(nil, core.NewVec3(1, 1, 0.95), 8)
	light := geometry.NewRectangle(core.NewVec3(0, 8, -2), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 4, 4, lightMat)

	shapes := []geometry.Shape{ground, diffuseSphere, mirrorSphere, roughSphere, glassSphere, light}

	camera := renderer.NewCamera(
		core.NewVec3(0, 2.5, -9),
		core.NewVec3(0, -0.15, 1),
		core.NewVec3(0, 1, 0),
		cfg.Width, cfg.Height,
	)

	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1, 1, 1)
	return New(shapes, camera, top, bottom, nil, true)
}
