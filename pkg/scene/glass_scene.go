package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates a glass sphere holding a water ellipsoid, over a
// checkered floor under an attenuated spotlight. Rays inside the ellipsoid
// carry three entries on the refraction index stack.
func NewGlassScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:     core.NewVec3(0, 2, 5),
		ViewDir: core.NewVec3(0, -0.3, -1),
		UpDir:   core.NewVec3(0, 1, 0),
		VFov:    50,
		Width:   400,
		Height:  300,
	}

	s := NewScene(cameraConfig, core.NewVec3(0.05, 0.05, 0.1))

	white := core.NewVec3(1, 1, 1)
	checker := material.NewCheckerboardTexture(64, 64, 8, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.6))

	floor := material.NewMaterial(white, white, 0.2, 0.8, 0.1, 10)
	glass := material.NewMaterial(core.NewVec3(0.95, 0.95, 1), white, 0.02, 0.1, 0.9, 120).
		WithTransparency(0.05, 1.5)
	water := material.NewMaterial(core.NewVec3(0.2, 0.5, 0.9), white, 0.05, 0.3, 0.7, 80).
		WithTransparency(0.3, 1.33)
	pillar := material.NewMaterial(core.NewVec3(0.8, 0.3, 0.3), white, 0.2, 0.7, 0.3, 20)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, -1), 10, floor, checker)...)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1.2, -1), 1.2, glass, nil),
		geometry.NewEllipsoid(core.NewVec3(0, 1.2, -1), core.NewVec3(0.5, 0.8, 0.5), water, nil),
		geometry.NewSphere(core.NewVec3(-2.2, 0.6, -3), 0.6, pillar, nil),
	)

	s.AddLight(
		lights.NewAttenuatedSpotLight(
			core.NewVec3(0, 7, 1),
			core.NewVec3(0, -6, -2),
			35,
			core.NewVec3(1, 1, 0.95),
			lights.Attenuation{Constant: 0.5, Linear: 0.05, Quadratic: 0.005},
		),
		lights.NewAttenuatedLight(
			core.NewVec3(-4, 3, 3),
			core.NewVec3(0.4, 0.4, 0.5),
			lights.Attenuation{Constant: 1, Linear: 0.02, Quadratic: 0},
		),
	)

	return s
}
