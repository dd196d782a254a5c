package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect mirrors the incident vector (pointing away from the surface) about
// the normal: R = 2(N·I)N - I. The result is normalized.
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return normal.Multiply(2 * normal.Dot(incident)).Subtract(incident).Normalize()
}

// Refract computes the transmitted direction using the vector form of Snell's
// law. incident points away from the surface, normal is on the incident side
// and eta is incidentIndex/transmitIndex. ok is false on total internal
// reflection.
func Refract(incident, normal core.Vec3, eta float64) (core.Vec3, bool) {
	cosTheta := math.Max(-1, math.Min(1, incident.Dot(normal)))
	sinThetaSq := 1 - cosTheta*cosTheta
	k := 1 - eta*eta*sinThetaSq
	if k < 0 {
		return core.Vec3{}, false
	}

	parallel := normal.Multiply(-math.Sqrt(k))
	perpendicular := normal.Multiply(cosTheta).Subtract(incident).Multiply(eta)
	return parallel.Add(perpendicular).Normalize(), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (refractiveIndex - 1) / (refractiveIndex + 1)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
