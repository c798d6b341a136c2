package scene

import (
	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/geometry"
	"github.com/JoarGunnarsson/pathtracer/internal/material"
	"github.com/JoarGunnarsson/pathtracer/internal/renderer"
)

// NewCornellScene builds the classic Cornell box: five Lambertian walls, a
// ceiling area light, a mirrored sphere, and a glass sphere -- the standard
// scene for checking that next-event estimation and MIS converge on a
// scene with both direct and fully indirect illumination.
func NewCornellScene(cfg config.Config) *Scene {
	const boxSize = 555.0
	half := boxSize / 2

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	floor := geometry.NewRectangle(core.NewVec3(half, 0, half), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), boxSize, boxSize, white)
	ceiling := geometry.NewRectangle(core.NewVec3(half, boxSize, half), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), boxSize, boxSize, white)
	backWall := geometry.NewRectangle(core.NewVec3(half, half, boxSize), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), boxSize, boxSize, white)
	leftWall := geometry.NewRectangle(core.NewVec3(0, half, half), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), boxSize, boxSize, red)
	rightWall := geometry.NewRectangle(core.NewVec3(boxSize, half, half), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), boxSize, boxSize, green)

	const lightSize = 130.0
	lightMat := material.NewLightEmitter(material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73)), core.NewVec3(1, 1, 1), 15)
	ceilingLight := geometry.NewRectangle(core.NewVec3(half, boxSize-1, half), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), lightSize, lightSize, lightMat)

	mirrorSphere := geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewPerfectReflective(core.NewVec3(0.9, 0.9, 0.9)))
	glassSphere := geometry.NewSphere(core.NewVec3(370, 90, 351), 90, material.NewTransparentDielectric(1.5))

	shapes := []geometry.Shape{floor, ceiling, backWall, leftWall, rightWall, ceilingLight, mirrorSphere, glassSphere}

	camera := renderer.NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		cfg.Width, cfg.Height,
	)

	return New(shapes, camera, core.Vec3{}, core.Vec3{}, nil, true)
}
