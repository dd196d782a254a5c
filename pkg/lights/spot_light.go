package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// SpotLight is a point light restricted to a cone around Direction
type SpotLight struct {
	Position  core.Vec3
	Direction core.Vec3 // Unit cone axis
	Angle     float64   // Cutoff half-angle in degrees
	Color     core.Vec3

	cosCutoff float64
}

// NewSpotLight creates a spotlight. direction is normalized; angle is the
// half-angle of the cone in degrees.
func NewSpotLight(position, direction core.Vec3, angle float64, color core.Vec3) *SpotLight {
	return &SpotLight{
		Position:  position,
		Direction: direction.Normalize(),
		Angle:     angle,
		Color:     color,
		cosCutoff: math.Cos(angle * math.Pi / 180),
	}
}

// Illuminates reports whether point lies inside the cone
func (l *SpotLight) Illuminates(point core.Vec3) bool {
	toPoint := point.Subtract(l.Position).Normalize()
	return l.Direction.Dot(toPoint) >= l.cosCutoff
}

// Illuminate implements Light
func (l *SpotLight) Illuminate(normal, view core.Vec3, hit core.Hit, kd, ks, shininess float64, channel int) float64 {
	if !l.Illuminates(hit.Point) {
		return 0
	}
	toLight := l.Position.Subtract(hit.Point).Normalize()
	return l.Color.Component(channel) * phong(normal, toLight, view, kd, ks, shininess)
}

// ShadowFactor implements Light
func (l *SpotLight) ShadowFactor(hit core.Hit, normal core.Vec3, surfaces []geometry.Surface, sampling ShadowSampling) float64 {
	caster := shadowCaster{
		position:  l.Position,
		cone:      true,
		axis:      l.Direction,
		cosCutoff: l.cosCutoff,
	}
	return caster.factor(hit, normal, surfaces, sampling)
}
