package scene

import (
	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/medium"
	"github.com/JoarGunnarsson/pathtracer/internal/renderer"
)

// NewCausticGlassScene places a colored-absorption glass sphere over a
// diffuse floor under a small area light, exercising the refraction path
// through TransparentDielectric together with a Beer's-law interior medium
// -- the scene a caustic/absorption regression would show up in first.
func NewCausticGlassScene(cfg config.Config) *Scene {
	floor := groundRectangle(core.NewVec3(0, 0, 0), 40, material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9)))

	absorption := medium.NewBeersLaw(core.NewVec3(0.6, 0.2, 1.2))
	glass := material.NewTransparentDielectricWithMedium(1.5, absorption)
	sphere := geometry.NewSphere(core.NewVec3(0, 1.3, 0), 1.3, glass)

	lightMat := material.NewLightEmitter(nil, core.NewVec3(1, 1, 1), 25)
	light := geometry.NewRectangle(core.NewVec3(0, 6, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 2, 2, lightMat)

	shapes := []geometry.Shape{floor, sphere, light}

	camera := renderer.NewCamera(
		core.NewVec3(0, 2, -6),
		core.NewVec3(0, -0.1, 1),
		core.NewVec3(0, 1, 0),
		cfg.Width, cfg.Height,
	)

	return New(shapes, camera, core.Vec3{}, core.NewVec3(0.05, 0.05, 0.05), nil, false)
}
