package core

// Ray is a point plus a direction. It doubles as a free vector when only the
// direction matters.
//
// Distance caches the direction's length at construction time. It is not
// updated by Scale or Unit, so it is only meaningful straight after NewRay,
// NewRayBetween, Add, Subtract or Cross.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Distance  float64
}

// NewRay creates a ray from an origin and a direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Distance: direction.Length()}
}

// NewRayBetween creates a ray starting at from and pointing at to.
// Distance is the distance between the two points.
func NewRayBetween(from, to Vec3) Ray {
	return NewRay(from, to.Subtract(from))
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Length returns the current length of the direction
func (r Ray) Length() float64 {
	return r.Direction.Length()
}

// Scale returns a copy with the direction scaled; Distance is left stale
func (r Ray) Scale(scalar float64) Ray {
	r.Direction = r.Direction.Multiply(scalar)
	return r
}

// Unit returns a copy with a unit-length direction; Distance is left stale.
// A zero direction is a precondition violation.
func (r Ray) Unit() Ray {
	return r.Scale(1.0 / r.Direction.Length())
}

// Add returns a ray with the receiver's origin and the summed directions
func (r Ray) Add(other Ray) Ray {
	return NewRay(r.Origin, r.Direction.Add(other.Direction))
}

// Subtract returns r + (-other), keeping the receiver's origin
func (r Ray) Subtract(other Ray) Ray {
	return r.Add(other.Scale(-1))
}

// Dot returns the dot product of the two directions
func (r Ray) Dot(other Ray) float64 {
	return r.Direction.Dot(other.Direction)
}

// Cross returns the cross product of the two directions. The origin is
// copied from the receiver and Distance is the length of the product.
func (r Ray) Cross(other Ray) Ray {
	return NewRay(r.Origin, r.Direction.Cross(other.Direction))
}
