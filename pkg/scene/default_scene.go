package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a diffuse sphere and a mirror sphere on a grey
// floor, lit by a point light and a directional light
func NewDefaultScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:     core.NewVec3(0, 1.5, 6),
		ViewDir: core.NewVec3(0, -0.2, -1),
		UpDir:   core.NewVec3(0, 1, 0),
		VFov:    45,
		Width:   400,
		Height:  300,
	}

	s := NewScene(cameraConfig, core.NewVec3(0.4, 0.6, 0.9))

	white := core.NewVec3(1, 1, 1)

	// Create materials
	floor := material.NewMaterial(core.NewVec3(0.6, 0.6, 0.6), white, 0.2, 0.8, 0.1, 10)
	red := material.NewMaterial(core.NewVec3(0.8, 0.15, 0.1), white, 0.15, 0.8, 0.4, 40)
	// A high refractive index makes Fresnel reflectance close to 1
	mirror := material.NewMaterial(core.NewVec3(0.9, 0.9, 0.9), white, 0.05, 0.2, 0.8, 100).
		WithTransparency(1, 20)
	gold := material.NewMaterial(core.NewVec3(0.85, 0.65, 0.2), white, 0.2, 0.7, 0.6, 60)

	// Floor first so spheres win exact ties against it
	s.Add(NewGroundQuad(core.NewVec3(0, 0, -1), 12, floor, nil)...)
	s.Add(
		geometry.NewSphere(core.NewVec3(-1.3, 1, -1), 1, red, nil),
		geometry.NewSphere(core.NewVec3(1.3, 1, -1.5), 1, mirror, nil),
		geometry.NewEllipsoid(core.NewVec3(0, 0.4, 0.8), core.NewVec3(0.6, 0.4, 0.4), gold, nil),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(3, 6, 4), core.NewVec3(0.8, 0.8, 0.8)),
		lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), core.NewVec3(0.3, 0.3, 0.3)),
	)

	return s
}
