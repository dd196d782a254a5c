package material

import (
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestMaterialValidate(t *testing.T) {
	valid := func() *Material {
		return NewMaterial(core.NewVec3(1, 0.5, 0), core.NewVec3(1, 1, 1), 0.1, 0.7, 0.2, 20)
	}

	tests := []struct {
		name        string
		mutate      func(m *Material)
		errContains string
	}{
		{"valid", func(m *Material) {}, ""},
		{"color out of range", func(m *Material) { m.Color.Y = 1.2 }, "green"},
		{"negative specular", func(m *Material) { m.Specular.Z = -0.1 }, "specular color blue"},
		{"ka too large", func(m *Material) { m.Ambient = 2 }, "ka"},
		{"negative shininess", func(m *Material) { m.Shininess = -1 }, "shininess"},
		{"opacity too large", func(m *Material) { m.Opacity = 1.01 }, "opacity"},
		{"zero refractive index", func(m *Material) { m.RefractiveIndex = 0 }, "refractive index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			err := m.Validate()

			if tt.errContains == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.errContains)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestMaterialWithTransparency(t *testing.T) {
	base := NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 0, 0.5, 0.5, 10)
	glass := base.WithTransparency(0.1, 1.5)

	if base.Opacity != 1 || base.RefractiveIndex != 1 {
		t.Errorf("WithTransparency modified the receiver: %+v", base)
	}
	if glass.Opacity != 0.1 || glass.RefractiveIndex != 1.5 {
		t.Errorf("Expected opacity 0.1 and index 1.5, got %+v", glass)
	}
}
