package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted ray tracing: Phong direct
// lighting with shadows, plus Fresnel-weighted mirror reflection and
// refraction up to a fixed depth
type WhittedIntegrator struct {
	config scene.SamplingConfig
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config scene.SamplingConfig) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// RayColor implements Integrator. Each call owns a fresh index stack holding
// the scene's ambient index.
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return wi.Trace(ray, s, sampler, NewIndexStack(s.AmbientIndex))
}

// Trace shades a primary ray with a caller-owned index stack, which is left
// exactly as deep as it was on entry
func (wi *WhittedIntegrator) Trace(ray core.Ray, s *scene.Scene, sampler core.Sampler, stack *IndexStack) core.Vec3 {
	t := tracer{
		scene:    s,
		stack:    stack,
		shadows:  wi.config.ShadowSampling(sampler),
		maxDepth: wi.config.Depth(),
	}
	return t.shade(ray, 0)
}

// ClosestHit scans surfaces in order and returns the nearest hit with a
// positive distance. surface is nil when nothing is hit; exact ties go to
// the earlier surface.
func ClosestHit(surfaces []geometry.Surface, ray core.Ray) (hit core.Hit, surface geometry.Surface) {
	hit = core.NoHit
	closest := math.Inf(1)
	for _, s := range surfaces {
		candidate := s.Intersect(ray)
		if candidate.Valid() && candidate.Distance < closest {
			closest = candidate.Distance
			hit = candidate
			surface = s
		}
	}
	return hit, surface
}

// tracer holds the per-primary-ray state shared by one recursion tree
type tracer struct {
	scene    *scene.Scene
	stack    *IndexStack
	shadows  lights.ShadowSampling
	maxDepth int
}

// shade returns the color seen along ray at the given recursion depth
func (t *tracer) shade(ray core.Ray, depth int) core.Vec3 {
	hit, surface := ClosestHit(t.scene.Surfaces, ray)
	if surface == nil {
		return t.scene.Background
	}

	normal := surface.NormalAt(hit)
	local := t.localLighting(hit, surface, normal)
	if depth >= t.maxDepth {
		return local.ClampMax(1)
	}

	mat := surface.Material()
	incident := ray.Direction.Negate().Normalize()

	// A ray travelling along the outward normal is leaving the object
	exiting := normal.Dot(ray.Direction) > 0
	incidentIndex, transmitIndex := t.stack.Top(), mat.RefractiveIndex
	if exiting {
		normal = normal.Negate()
		incidentIndex, transmitIndex = mat.RefractiveIndex, t.stack.Below()
	}

	offset := normal.Multiply(t.shadows.Bias)
	fresnel := mat.Fresnel(math.Min(1, incident.Dot(normal)))

	result := local.Add(t.reflect(hit.Point.Add(offset), incident, normal, depth).Multiply(fresnel))

	if weight := (1 - fresnel) * (1 - mat.Opacity); weight > 0 {
		eta := incidentIndex / transmitIndex
		transmitted := t.transmit(hit.Point.Subtract(offset), incident, normal, mat, exiting, eta, depth)
		result = result.Add(transmitted.Multiply(weight))
	}

	return result.ClampMax(1)
}

// reflect traces the mirror ray. The reflected ray stays in the medium it
// arrived through, so the index stack is left as it is.
func (t *tracer) reflect(origin, incident, normal core.Vec3, depth int) core.Vec3 {
	return t.shade(core.NewRay(origin, material.Reflect(incident, normal)), depth+1)
}

// transmit traces the refracted ray, entering or leaving the object's medium.
// Total internal reflection contributes black.
func (t *tracer) transmit(origin, incident, normal core.Vec3, mat *material.Material, exiting bool, eta float64, depth int) core.Vec3 {
	direction, ok := material.Refract(incident, normal, eta)
	if !ok {
		return core.Vec3{}
	}
	ray := core.NewRay(origin, direction)

	if !exiting {
		t.stack.Push(mat.RefractiveIndex)
		color := t.shade(ray, depth+1)
		t.stack.Pop()
		return color
	}

	index, popped := t.stack.Pop()
	color := t.shade(ray, depth+1)
	if popped {
		t.stack.Push(index)
	}
	return color
}

// localLighting returns the ambient term plus the shadowed Phong
// contribution of every light. normal is the surface's outward normal and
// the view vector points at the eye.
func (t *tracer) localLighting(hit core.Hit, surface geometry.Surface, normal core.Vec3) core.Vec3 {
	mat := surface.Material()
	base := geometry.BaseColor(surface, hit)
	view := t.scene.Eye().Subtract(hit.Point).Normalize()

	var direct [3]float64
	for _, light := range t.scene.Lights {
		shadow := light.ShadowFactor(hit, normal, t.scene.Surfaces, t.shadows)
		if shadow == 0 {
			continue
		}
		for ch := range direct {
			kd := mat.Diffuse * base.Component(ch)
			ks := mat.SpecularCoeff * mat.Specular.Component(ch)
			direct[ch] += shadow * light.Illuminate(normal, view, hit, kd, ks, mat.Shininess, ch)
		}
	}

	return base.Multiply(mat.Ambient).Add(core.NewVec3(direct[0], direct[1], direct[2]))
}
