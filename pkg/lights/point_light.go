package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// PointLight is a point light, or a directional light when Directional is set.
// A directional light stores the direction it shines in as its Position.
type PointLight struct {
	Position    core.Vec3
	Color       core.Vec3
	Directional bool
}

// NewPointLight creates a light at position
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// NewDirectionalLight creates an infinitely distant light shining along direction
func NewDirectionalLight(direction, color core.Vec3) *PointLight {
	return &PointLight{Position: direction, Color: color, Directional: true}
}

// ToLight returns the unit vector from point toward the light
func (l *PointLight) ToLight(point core.Vec3) core.Vec3 {
	if l.Directional {
		return l.Position.Negate().Normalize()
	}
	return l.Position.Subtract(point).Normalize()
}

// Illuminate implements Light
func (l *PointLight) Illuminate(normal, view core.Vec3, hit core.Hit, kd, ks, shininess float64, channel int) float64 {
	return l.Color.Component(channel) * phong(normal, l.ToLight(hit.Point), view, kd, ks, shininess)
}

// ShadowFactor implements Light
func (l *PointLight) ShadowFactor(hit core.Hit, normal core.Vec3, surfaces []geometry.Surface, sampling ShadowSampling) float64 {
	caster := shadowCaster{position: l.Position, directional: l.Directional}
	return caster.factor(hit, normal, surfaces, sampling)
}
