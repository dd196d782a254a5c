package core

// Hit is the result of a ray/surface intersection test.
// A non-positive Distance means there was no intersection; every surface
// returns NoHit rather than a nil value so callers can compare distances
// without branching on presence.
type Hit struct {
	Point    Vec3
	Distance float64
}

// NoHit is the absence-of-intersection sentinel
var NoHit = Hit{Point: Vec3{-1, -1, -1}, Distance: -1}

// NewHit creates a hit at parameter t along ray
func NewHit(ray Ray, t float64) Hit {
	return Hit{Point: ray.At(t), Distance: t}
}

// Valid reports whether the hit lies in front of the ray origin
func (h Hit) Valid() bool {
	return h.Distance > 0
}
