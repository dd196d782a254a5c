package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong parameters shared by every surface that uses it
type Material struct {
	Color           core.Vec3 // Base (diffuse) color, each channel in [0, 1]
	Specular        core.Vec3 // Specular highlight color
	Ambient         float64   // ka
	Diffuse         float64   // kd
	SpecularCoeff   float64   // ks
	Shininess       float64   // Phong exponent n
	Opacity         float64   // 1 = fully opaque
	RefractiveIndex float64
}

// NewMaterial creates an opaque material with the given colors and coefficients
func NewMaterial(color, specular core.Vec3, ka, kd, ks, shininess float64) *Material {
	return &Material{
		Color:           color,
		Specular:        specular,
		Ambient:         ka,
		Diffuse:         kd,
		SpecularCoeff:   ks,
		Shininess:       shininess,
		Opacity:         1,
		RefractiveIndex: 1,
	}
}

// WithTransparency returns a copy with the given opacity and refractive index
func (m *Material) WithTransparency(opacity, refractiveIndex float64) *Material {
	c := *m
	c.Opacity = opacity
	c.RefractiveIndex = refractiveIndex
	return &c
}

// Validate checks every coefficient against its allowed range
func (m *Material) Validate() error {
	if err := validateColor("color", m.Color); err != nil {
		return err
	}
	if err := validateColor("specular color", m.Specular); err != nil {
		return err
	}
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ka", m.Ambient},
		{"kd", m.Diffuse},
		{"ks", m.SpecularCoeff},
		{"opacity", m.Opacity},
	}
	for _, c := range coefficients {
		if c.value < 0 || c.value > 1 {
			return fmt.Errorf("material %s %g is not within [0, 1]", c.name, c.value)
		}
	}
	if m.Shininess < 0 {
		return fmt.Errorf("material shininess %g is negative", m.Shininess)
	}
	if m.RefractiveIndex <= 0 {
		return fmt.Errorf("material refractive index %g is not positive", m.RefractiveIndex)
	}
	return nil
}

// Fresnel returns Schlick's approximation of the reflectance for a ray
// meeting the surface at an angle whose cosine is cosTheta
func (m *Material) Fresnel(cosTheta float64) float64 {
	return Reflectance(cosTheta, m.RefractiveIndex)
}

func validateColor(name string, c core.Vec3) error {
	for i, channel := range []string{"red", "green", "blue"} {
		v := c.Component(i)
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %s value %g is not within [0, 1]", name, channel, v)
		}
	}
	return nil
}
