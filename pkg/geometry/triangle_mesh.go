package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMeshOptions contains optional per-vertex data for mesh creation
type TriangleMeshOptions struct {
	Normals []core.Vec3       // Optional vertex normals (one per vertex)
	UVs     []core.Vec2       // Optional texture coordinates (one per vertex)
	Texture *material.Texture // Optional texture, used only with UVs
}

// NewTriangleMesh expands shared vertices and face indices into triangles.
// Each group of 3 indices in faces forms one triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat *material.Material, options *TriangleMeshOptions) ([]Surface, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	if options == nil {
		options = &TriangleMeshOptions{}
	}
	if options.Normals != nil && len(options.Normals) != len(vertices) {
		return nil, fmt.Errorf("got %d normals for %d vertices", len(options.Normals), len(vertices))
	}
	if options.UVs != nil && len(options.UVs) != len(vertices) {
		return nil, fmt.Errorf("got %d texture coordinates for %d vertices", len(options.UVs), len(vertices))
	}

	triangles := make([]Surface, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range", i/3, idx)
			}
		}

		var triOptions TriangleOptions
		if options.Normals != nil {
			triOptions.Normals = &[3]core.Vec3{options.Normals[i0], options.Normals[i1], options.Normals[i2]}
		}
		if options.UVs != nil {
			triOptions.UVs = &[3]core.Vec2{options.UVs[i0], options.UVs[i1], options.UVs[i2]}
			triOptions.Texture = options.Texture
		}

		triangles = append(triangles, NewTriangleWithOptions(vertices[i0], vertices[i1], vertices[i2], mat, triOptions))
	}

	return triangles, nil
}

// NewQuad creates two triangles spanning corner, corner+u, corner+u+v and
// corner+v, with texture coordinates running 0..1 along u and v
func NewQuad(corner, u, v core.Vec3, mat *material.Material, texture *material.Texture) []Surface {
	vertices := []core.Vec3{
		corner,
		corner.Add(u),
		corner.Add(u).Add(v),
		corner.Add(v),
	}
	uvs := []core.Vec2{
		core.NewVec2(0, 0),
		core.NewVec2(1, 0),
		core.NewVec2(1, 1),
		core.NewVec2(0, 1),
	}

	// Indices are always valid for four vertices
	mesh, _ := NewTriangleMesh(vertices, []int{0, 1, 2, 0, 2, 3}, mat, &TriangleMeshOptions{
		UVs:     uvs,
		Texture: texture,
	})
	return mesh
}
