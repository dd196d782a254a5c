package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// phong evaluates kd·max(0, N·L) + ks·max(0, N·H)^n with H the normalized
// half-vector between the light and view directions
func phong(normal, toLight, view core.Vec3, kd, ks, shininess float64) float64 {
	nDotL := math.Max(0, normal.Dot(toLight))

	specular := 0.0
	if half := toLight.Add(view); !half.IsZero() {
		// A surface turned away from the half-vector gets no highlight, even
		// with a zero exponent
		if nDotH := normal.Dot(half.Normalize()); nDotH > 0 {
			specular = math.Pow(nDotH, shininess)
		}
	}

	return kd*nDotL + ks*specular
}

// Attenuation holds the constant, linear and quadratic falloff coefficients
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// Factor returns 1 / (c1 + c2·d + c3·d²)
func (a Attenuation) Factor(distance float64) float64 {
	return 1 / (a.Constant + a.Linear*distance + a.Quadratic*distance*distance)
}
