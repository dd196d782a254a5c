package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AttenuatedSpotLight is a SpotLight whose contribution falls off with distance
type AttenuatedSpotLight struct {
	SpotLight
	Attenuation Attenuation
}

// NewAttenuatedSpotLight creates an attenuated spotlight
func NewAttenuatedSpotLight(position, direction core.Vec3, angle float64, color core.Vec3, attenuation Attenuation) *AttenuatedSpotLight {
	return &AttenuatedSpotLight{
		SpotLight:   *NewSpotLight(position, direction, angle, color),
		Attenuation: attenuation,
	}
}

// Illuminate implements Light
func (l *AttenuatedSpotLight) Illuminate(normal, view core.Vec3, hit core.Hit, kd, ks, shininess float64, channel int) float64 {
	distance := core.NewRayBetween(hit.Point, l.Position).Distance
	return l.Attenuation.Factor(distance) * l.SpotLight.Illuminate(normal, view, hit, kd, ks, shininess, channel)
}
