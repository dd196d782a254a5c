package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Light is implemented by the four light variants: PointLight (which also
// covers directional lights), AttenuatedLight, SpotLight and
// AttenuatedSpotLight.
type Light interface {
	// Illuminate returns the Phong diffuse plus specular contribution of the
	// light for one color channel (0 = red, 1 = green, 2 = blue).
	// kd and ks are already multiplied by the surface's base and specular
	// color for that channel. normal and view must be unit vectors.
	Illuminate(normal, view core.Vec3, hit core.Hit, kd, ks, shininess float64, channel int) float64

	// ShadowFactor returns the fraction of the light reaching hit, in [0, 1].
	// Each surface between hit and the light scales the transmittance by
	// 1 - opacity; the result is averaged over sampling.Rays rays.
	ShadowFactor(hit core.Hit, normal core.Vec3, surfaces []geometry.Surface, sampling ShadowSampling) float64
}

// ShadowSampling controls how shadow rays are cast
type ShadowSampling struct {
	Rays    int          // Rays per light and hit; 1 or less means hard shadows
	Jitter  float64      // Per-axis random offset of the light position for soft shadows
	Bias    float64      // Offset of the ray origin along the normal
	Sampler core.Sampler // Jitter source; not used for hard shadows
}

// HardShadows returns sampling settings that cast a single unjittered ray
func HardShadows(bias float64) ShadowSampling {
	return ShadowSampling{Rays: 1, Bias: bias}
}

// soft reports whether rays are jittered
func (s ShadowSampling) soft() bool {
	return s.Rays > 1 && s.Sampler != nil
}

// rayCount returns the number of rays to cast, at least one
func (s ShadowSampling) rayCount() int {
	if !s.soft() {
		return 1
	}
	return s.Rays
}

// jitter returns a random offset in [-Jitter, Jitter) on each axis
func (s ShadowSampling) jitter() core.Vec3 {
	u := s.Sampler.Get3D()
	return core.NewVec3(
		(2*u.X-1)*s.Jitter,
		(2*u.Y-1)*s.Jitter,
		(2*u.Z-1)*s.Jitter,
	)
}
