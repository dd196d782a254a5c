package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Rendering defaults
const (
	DefaultMaxDepth     = 5     // Reflection/transmission recursion depth
	MaxDepthLimit       = 16    // Hard cap on MaxDepth
	DefaultShadowJitter = 0.015 // Per-axis light offset for soft shadows
	DefaultBias         = 0.001 // Self-intersection offset along the normal
	DefaultSeed         = 42
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Surfaces       []geometry.Surface // Scanned linearly, in order
	Lights         []lights.Light
	Background     core.Vec3 // Color of rays that hit nothing
	AmbientIndex   float64   // Refractive index of the surrounding medium
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width        int     // Image width
	Height       int     // Image height
	MaxDepth     int     // Maximum reflection/transmission depth
	ShadowRays   int     // Shadow rays per light and hit; 1 means hard shadows
	ShadowJitter float64 // Per-axis light offset for soft shadows
	Bias         float64 // Self-intersection offset along the normal
	Seed         int64   // Seed for soft shadow jitter
	Workers      int     // Render workers; 0 means one per CPU
}

// DefaultSamplingConfig returns hard shadows and the default depth for an image size
func DefaultSamplingConfig(width, height int) SamplingConfig {
	return SamplingConfig{
		Width:        width,
		Height:       height,
		MaxDepth:     DefaultMaxDepth,
		ShadowRays:   1,
		ShadowJitter: DefaultShadowJitter,
		Bias:         DefaultBias,
		Seed:         DefaultSeed,
	}
}

// Depth returns MaxDepth clamped to [0, MaxDepthLimit]
func (c SamplingConfig) Depth() int {
	return max(0, min(MaxDepthLimit, c.MaxDepth))
}

// ShadowSampling returns the shadow settings for one sampler
func (c SamplingConfig) ShadowSampling(sampler core.Sampler) lights.ShadowSampling {
	return lights.ShadowSampling{
		Rays:    c.ShadowRays,
		Jitter:  c.ShadowJitter,
		Bias:    c.Bias,
		Sampler: sampler,
	}
}

// NewScene creates an empty scene viewed through cameraConfig, with a vacuum
// as the ambient medium. The configuration must be valid.
func NewScene(cameraConfig geometry.CameraConfig, background core.Vec3) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Background:     background,
		AmbientIndex:   1,
		SamplingConfig: DefaultSamplingConfig(cameraConfig.Width, cameraConfig.Height),
	}
}

// Eye returns the camera position
func (s *Scene) Eye() core.Vec3 {
	return s.CameraConfig.Eye
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// NewGroundQuad creates a horizontal square centered at center, facing +Y
func NewGroundQuad(center core.Vec3, size float64, mat *material.Material, texture *material.Texture) []geometry.Surface {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z+size/2)
	// u × v = (size,0,0) × (0,0,-size) = (0,size²,0)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, -size)
	return geometry.NewQuad(corner, u, v, mat, texture)
}

// GetPrimitiveCount returns the number of surfaces in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Surfaces)
}
