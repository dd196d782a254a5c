package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// shadowCaster traces shadow rays from a hit toward one light
type shadowCaster struct {
	position    core.Vec3 // Light position, or its direction for directional lights
	directional bool

	// Spotlights only count occluders inside their cone
	cone      bool
	axis      core.Vec3
	cosCutoff float64
}

// factor averages the transmittance over every cast ray
func (c shadowCaster) factor(hit core.Hit, normal core.Vec3, surfaces []geometry.Surface, sampling ShadowSampling) float64 {
	origin := hit.Point.Add(normal.Multiply(sampling.Bias))
	rays := sampling.rayCount()

	total := 0.0
	for i := 0; i < rays; i++ {
		target := c.position
		if sampling.soft() {
			target = target.Add(sampling.jitter())
		}
		total += c.transmittance(c.shadowRay(origin, target), surfaces)
	}

	return total / float64(rays)
}

// shadowRay returns a unit ray from origin toward the light. For positional
// lights the stale Distance is the distance to the light.
func (c shadowCaster) shadowRay(origin, target core.Vec3) core.Ray {
	if c.directional {
		return core.NewRay(origin, target.Negate()).Unit()
	}
	return core.NewRayBetween(origin, target).Unit()
}

// transmittance multiplies (1 - opacity) over every surface blocking ray
func (c shadowCaster) transmittance(ray core.Ray, surfaces []geometry.Surface) float64 {
	pass := 1.0
	for _, surface := range surfaces {
		contact := surface.Intersect(ray)
		if !contact.Valid() {
			continue
		}
		// Anything in front of a directional light blocks it
		if !c.directional && contact.Distance >= ray.Distance {
			continue
		}
		if c.cone && c.axis.Dot(ray.Direction.Negate()) <= c.cosCutoff {
			continue
		}
		pass *= 1 - surface.Material().Opacity
	}
	return pass
}
