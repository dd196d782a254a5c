package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// barycentricEpsilon is the slack allowed on α+β+γ-1 when deciding whether
// a plane hit lies inside the triangle
const barycentricEpsilon = 1e-5

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	surface
	V0, V1, V2 core.Vec3 // The three vertices

	normals *[3]core.Vec3 // Optional per-vertex normals for smooth shading
	uvs     *[3]core.Vec2 // Optional per-vertex texture coordinates

	edge1, edge2 core.Vec3 // V1-V0 and V2-V0
	planeNormal  core.Vec3 // edge1 × edge2, not normalized
	faceNormal   core.Vec3 // Cached unit normal
	area         float64   // Cached triangle area
}

// TriangleOptions contains optional per-vertex data for a triangle
type TriangleOptions struct {
	Normals *[3]core.Vec3     // Unit vertex normals; nil means flat shading
	UVs     *[3]core.Vec2     // Texture coordinates; nil means no texture lookup
	Texture *material.Texture // Ignored unless UVs are present
}

// NewTriangle creates a new flat-shaded, untextured triangle
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	return NewTriangleWithOptions(v0, v1, v2, mat, TriangleOptions{})
}

// NewTriangleWithOptions creates a triangle with optional vertex normals and
// texture coordinates. Degenerate (zero-area) triangles are not allowed.
func NewTriangleWithOptions(v0, v1, v2 core.Vec3, mat *material.Material, options TriangleOptions) *Triangle {
	t := &Triangle{
		surface: surface{material: mat, texture: options.Texture},
		V0:      v0,
		V1:      v1,
		V2:      v2,
		normals: options.Normals,
		uvs:     options.UVs,
	}

	// Precompute plane data for efficiency
	t.edge1 = v1.Subtract(v0)
	t.edge2 = v2.Subtract(v0)
	t.planeNormal = t.edge1.Cross(t.edge2)
	t.faceNormal = t.planeNormal.Normalize()
	t.area = 0.5 * t.planeNormal.Length()

	return t
}

// Intersect intersects the ray with the triangle's plane, then accepts the
// point if its barycentric coordinates place it inside the triangle
func (t *Triangle) Intersect(ray core.Ray) core.Hit {
	denominator := t.planeNormal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if denominator == 0 {
		return core.NoHit
	}

	d := -t.planeNormal.Dot(t.V0)
	distance := -(t.planeNormal.Dot(ray.Origin) + d) / denominator
	if distance <= 0 {
		return core.NoHit
	}

	point := ray.At(distance)
	alpha, beta, gamma := t.Barycentric(point)

	if !inUnitRange(alpha) || !inUnitRange(beta) || !inUnitRange(gamma) {
		return core.NoHit
	}
	if alpha+beta+gamma-1 > barycentricEpsilon {
		return core.NoHit
	}

	return core.Hit{Point: point, Distance: distance}
}

// Barycentric returns the weights of V0, V1 and V2 for a point in the
// triangle's plane, each computed as a sub-triangle area over the total area
func (t *Triangle) Barycentric(point core.Vec3) (alpha, beta, gamma float64) {
	toV1 := point.Subtract(t.V1)
	toV2 := point.Subtract(t.V2)

	areaA := 0.5 * toV1.Cross(toV2).Length()
	areaB := 0.5 * toV2.Cross(t.edge2).Length()
	areaC := 0.5 * t.edge1.Cross(toV1).Length()

	return areaA / t.area, areaB / t.area, areaC / t.area
}

// NormalAt returns the face normal, or the barycentric blend of the vertex
// normals when they are present
func (t *Triangle) NormalAt(hit core.Hit) core.Vec3 {
	if t.normals == nil {
		return t.faceNormal
	}

	alpha, beta, gamma := t.Barycentric(hit.Point)
	n := t.normals
	return n[0].Multiply(alpha).Add(n[1].Multiply(beta)).Add(n[2].Multiply(gamma)).Normalize()
}

// HasTexture reports whether both a texture and texture coordinates are present
func (t *Triangle) HasTexture() bool {
	return t.texture != nil && t.uvs != nil
}

// TextureColorAt blends the vertex texture coordinates and samples the texture
func (t *Triangle) TextureColorAt(hit core.Hit) core.Vec3 {
	alpha, beta, gamma := t.Barycentric(hit.Point)
	uv := t.uvs
	u := alpha*uv[0].X + beta*uv[1].X + gamma*uv[2].X
	v := alpha*uv[0].Y + beta*uv[1].Y + gamma*uv[2].Y
	return t.texture.Sample(core.NewVec2(u, v))
}

// FaceNormal returns the triangle's unit face normal
func (t *Triangle) FaceNormal() core.Vec3 {
	return t.faceNormal
}

func inUnitRange(x float64) bool {
	return x >= 0 && x <= 1
}
