package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AttenuatedLight is a PointLight whose contribution falls off with distance.
// Directional attenuated lights have no finite distance and are not attenuated.
type AttenuatedLight struct {
	PointLight
	Attenuation Attenuation
}

// NewAttenuatedLight creates an attenuated point light
func NewAttenuatedLight(position, color core.Vec3, attenuation Attenuation) *AttenuatedLight {
	return &AttenuatedLight{
		PointLight:  PointLight{Position: position, Color: color},
		Attenuation: attenuation,
	}
}

// Illuminate implements Light
func (l *AttenuatedLight) Illuminate(normal, view core.Vec3, hit core.Hit, kd, ks, shininess float64, channel int) float64 {
	factor := 1.0
	if !l.Directional {
		factor = l.Attenuation.Factor(core.NewRayBetween(hit.Point, l.Position).Distance)
	}
	return factor * l.PointLight.Illuminate(normal, view, hit, kd, ks, shininess, channel)
}
