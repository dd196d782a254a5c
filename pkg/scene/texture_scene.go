package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTexturedScene creates a checker-textured sphere and a UV-debug ellipsoid
// in front of a curved, UV-mapped backdrop whose vertex normals give it
// smooth shading
func NewTexturedScene() *Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:     core.NewVec3(0, 1, 5),
		ViewDir: core.NewVec3(0, 0, -1),
		UpDir:   core.NewVec3(0, 1, 0),
		VFov:    50,
		Width:   400,
		Height:  300,
	}

	s := NewScene(cameraConfig, core.NewVec3(0, 0, 0))

	white := core.NewVec3(1, 1, 1)
	checker := material.NewCheckerboardTexture(256, 128, 16, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.8, 0.2, 0.2))
	uvDebug := material.NewUVDebugTexture(64, 64)
	gradient := material.NewGradientTexture(2, 64, core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(0.9, 0.8, 0.3))

	matte := material.NewMaterial(white, white, 0.2, 0.8, 0.3, 30)

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, matte, checker))
	s.Add(geometry.NewEllipsoid(core.NewVec3(2, 0.6, 0.5), core.NewVec3(0.6, 0.5, 0.4), matte, uvDebug))
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 8, matte, checker)...)
	s.Add(newBackdrop(matte, gradient)...)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(2, 4, 4), core.NewVec3(0.9, 0.9, 0.9)),
		lights.NewSpotLight(core.NewVec3(-3, 3, 2), core.NewVec3(3, -2, -2), 25, core.NewVec3(0.4, 0.4, 0.4)),
	)

	return s
}

// newBackdrop creates a flat vertical panel behind the origin whose vertex
// normals lean outward at the sides, so shading varies as if it were curved
func newBackdrop(mat *material.Material, texture *material.Texture) []geometry.Surface {
	vertices := []core.Vec3{
		core.NewVec3(-4, 0, -3),
		core.NewVec3(4, 0, -3),
		core.NewVec3(4, 4, -3),
		core.NewVec3(-4, 4, -3),
	}
	normals := []core.Vec3{
		core.NewVec3(0.5, 0, 1).Normalize(),
		core.NewVec3(-0.5, 0, 1).Normalize(),
		core.NewVec3(-0.5, 0, 1).Normalize(),
		core.NewVec3(0.5, 0, 1).Normalize(),
	}
	uvs := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(1, 1),
		core.NewVec2(0, 1),
	}

	// Indices are valid for four vertices
	mesh, _ := geometry.NewTriangleMesh(vertices, []int{0, 1, 2, 0, 2, 3}, mat, &geometry.TriangleMeshOptions{
		Normals: normals,
		UVs:     uvs,
		Texture: texture,
	})
	return mesh
}
