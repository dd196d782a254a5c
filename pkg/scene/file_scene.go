package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadScene parses a scene file and converts it to a scene
func LoadScene(filename string) (*Scene, error) {
	sceneFile, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return NewSceneFromFile(sceneFile)
}

// NewSceneFromFile converts a parsed scene file. Surfaces keep the file's
// statement order, which decides exact distance ties.
func NewSceneFromFile(sceneFile *loaders.SceneFile) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Eye:     sceneFile.Eye,
		ViewDir: sceneFile.ViewDir,
		UpDir:   sceneFile.UpDir,
		VFov:    sceneFile.VFov,
		Width:   sceneFile.Width,
		Height:  sceneFile.Height,
	}
	if err := cameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera: %w", err)
	}

	s := NewScene(cameraConfig, sceneFile.Background)
	s.AmbientIndex = sceneFile.AmbientIndex

	for _, object := range sceneFile.Objects {
		surface, err := convertObject(sceneFile, &object)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", object.Line, err)
		}
		s.Add(surface)
	}

	for _, light := range sceneFile.Lights {
		s.AddLight(convertLight(&light))
	}

	return s, nil
}

// convertObject creates the surface for one object statement
func convertObject(sceneFile *loaders.SceneFile, object *loaders.ObjectStatement) (geometry.Surface, error) {
	if object.Material < 0 || object.Material >= len(sceneFile.Materials) {
		return nil, fmt.Errorf("invalid material index %d", object.Material)
	}
	mat := sceneFile.Materials[object.Material]

	var texture *material.Texture
	if object.Texture >= 0 {
		if object.Texture >= len(sceneFile.Textures) {
			return nil, fmt.Errorf("invalid texture index %d", object.Texture)
		}
		texture = sceneFile.Textures[object.Texture]
	}

	switch object.Kind {
	case loaders.ObjectSphere:
		return geometry.NewSphere(object.Center, object.Radii.X, mat, texture), nil
	case loaders.ObjectEllipsoid:
		return geometry.NewEllipsoid(object.Center, object.Radii, mat, texture), nil
	case loaders.ObjectTriangle:
		return convertTriangle(sceneFile, object, mat, texture)
	default:
		return nil, fmt.Errorf("unknown object kind %d", object.Kind)
	}
}

func convertTriangle(sceneFile *loaders.SceneFile, object *loaders.ObjectStatement, mat *material.Material, texture *material.Texture) (geometry.Surface, error) {
	var corners [3]core.Vec3
	for i, index := range object.Vertices {
		corners[i] = sceneFile.Vertices[index]
	}
	if corners[1].Subtract(corners[0]).Cross(corners[2].Subtract(corners[0])).IsZero() {
		return nil, fmt.Errorf("degenerate triangle")
	}

	options := geometry.TriangleOptions{Texture: texture}
	if object.Normals != nil {
		normals := [3]core.Vec3{}
		for i, index := range object.Normals {
			normals[i] = sceneFile.Normals[index]
		}
		options.Normals = &normals
	}
	if object.UVs != nil {
		uvs := [3]core.Vec2{}
		for i, index := range object.UVs {
			uvs[i] = sceneFile.UVs[index]
		}
		options.UVs = &uvs
	}

	return geometry.NewTriangleWithOptions(corners[0], corners[1], corners[2], mat, options), nil
}

// convertLight creates the light for one light statement
func convertLight(light *loaders.LightStatement) lights.Light {
	switch light.Kind {
	case loaders.LightAttenuated:
		if light.Directional {
			// Distance is undefined for a directional light, so attenuation is 1
			return lights.NewDirectionalLight(light.Position, light.Color)
		}
		return lights.NewAttenuatedLight(light.Position, light.Color, light.Attenuation)
	case loaders.LightSpot:
		return lights.NewSpotLight(light.Position, light.Direction, light.Angle, light.Color)
	case loaders.LightAttenuatedSpot:
		return lights.NewAttenuatedSpotLight(light.Position, light.Direction, light.Angle, light.Color, light.Attenuation)
	default:
		if light.Directional {
			return lights.NewDirectionalLight(light.Position, light.Color)
		}
		return lights.NewPointLight(light.Position, light.Color)
	}
}
