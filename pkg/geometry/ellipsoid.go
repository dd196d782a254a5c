package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Ellipsoid is an axis-aligned ellipsoid with one radius per axis
type Ellipsoid struct {
	surface
	Center core.Vec3
	Radii  core.Vec3

	invRadiiSq core.Vec3 // 1/r² per axis
}

// NewEllipsoid creates a new ellipsoid. texture may be nil.
func NewEllipsoid(center, radii core.Vec3, mat *material.Material, texture *material.Texture) *Ellipsoid {
	return &Ellipsoid{
		surface:    surface{material: mat, texture: texture},
		Center:     center,
		Radii:      radii,
		invRadiiSq: core.NewVec3(1/(radii.X*radii.X), 1/(radii.Y*radii.Y), 1/(radii.Z*radii.Z)),
	}
}

// Intersect substitutes the ray into (x-cx)²/rx² + (y-cy)²/ry² + (z-cz)²/rz² = 1
func (e *Ellipsoid) Intersect(ray core.Ray) core.Hit {
	oc := ray.Origin.Subtract(e.Center)
	d := ray.Direction

	a := d.MultiplyVec(d).Dot(e.invRadiiSq)
	b := 2 * d.MultiplyVec(oc).Dot(e.invRadiiSq)
	c := oc.MultiplyVec(oc).Dot(e.invRadiiSq) - 1

	return hitAt(ray, nearestRoot(a, b, c))
}

// NormalAt returns the normalized gradient of the implicit surface
func (e *Ellipsoid) NormalAt(hit core.Hit) core.Vec3 {
	return hit.Point.Subtract(e.Center).MultiplyVec(e.invRadiiSq).Multiply(2).Normalize()
}

// HasTexture reports whether a texture is attached
func (e *Ellipsoid) HasTexture() bool {
	return e.texture != nil
}

// TextureColorAt samples the texture using spherical coordinates of the normal
func (e *Ellipsoid) TextureColorAt(hit core.Hit) core.Vec3 {
	return e.texture.Sample(sphericalUV(e.NormalAt(hit)))
}
