package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. texture may be nil.
func NewSphere(center core.Vec3, radius float64, mat *material.Material, texture *material.Texture) *Sphere {
	return &Sphere{
		surface: surface{material: mat, texture: texture},
		Center:  center,
		Radius:  radius,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) core.Hit {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	return hitAt(ray, nearestRoot(a, b, c))
}

// NormalAt returns the outward normal (from center to hit point)
func (s *Sphere) NormalAt(hit core.Hit) core.Vec3 {
	return hit.Point.Subtract(s.Center).Normalize()
}

// HasTexture reports whether a texture is attached
func (s *Sphere) HasTexture() bool {
	return s.texture != nil
}

// TextureColorAt samples the texture using spherical coordinates of the normal
func (s *Sphere) TextureColorAt(hit core.Hit) core.Vec3 {
	return s.texture.Sample(sphericalUV(s.NormalAt(hit)))
}
