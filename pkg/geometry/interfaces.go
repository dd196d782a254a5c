package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Surface is implemented by every primitive the shader can hit:
// Sphere, Ellipsoid and Triangle.
type Surface interface {
	// Intersect returns the nearest hit with positive distance along ray,
	// or core.NoHit.
	Intersect(ray core.Ray) core.Hit

	// NormalAt returns the unit outward normal at a hit on this surface
	NormalAt(hit core.Hit) core.Vec3

	// HasTexture reports whether TextureColorAt may be called
	HasTexture() bool

	// TextureColorAt returns the texel color at a hit. Callers must check
	// HasTexture first.
	TextureColorAt(hit core.Hit) core.Vec3

	// Material returns the shared Phong material
	Material() *material.Material
}
