package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// surface holds the material and optional texture references every
// primitive carries. Both are owned by the scene and shared read-only.
type surface struct {
	material *material.Material
	texture  *material.Texture
}

// Material returns the surface material
func (s surface) Material() *material.Material {
	return s.material
}

// Texture returns the attached texture, or nil
func (s surface) Texture() *material.Texture {
	return s.texture
}

// BaseColor returns the texel at hit when the surface can be textured,
// otherwise the material color
func BaseColor(s Surface, hit core.Hit) core.Vec3 {
	if s.HasTexture() {
		return s.TextureColorAt(hit)
	}
	return s.Material().Color
}

// sphericalUV maps a unit normal to texture coordinates.
// v follows the polar angle from +Z, u the azimuth in the XY plane.
func sphericalUV(normal core.Vec3) core.Vec2 {
	// Guard acos against values a hair outside [-1, 1]
	z := math.Max(-1, math.Min(1, normal.Z))
	phi := math.Acos(z)

	theta := math.Atan2(normal.Y, normal.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	return core.NewVec2(theta/(2*math.Pi), phi/math.Pi)
}

// nearestRoot picks the intersection distance from the two roots of a
// quadratic: the smaller one when both are positive, the positive one when
// only one is, and -1 otherwise.
func nearestRoot(a, b, c float64) float64 {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return -1
	}
	if discriminant == 0 {
		return -b / (2 * a)
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return -1
}

// hitAt wraps a quadratic root into a Hit, mapping non-positive roots to NoHit
func hitAt(ray core.Ray, t float64) core.Hit {
	if t <= 0 {
		return core.NoHit
	}
	return core.NewHit(ray, t)
}
