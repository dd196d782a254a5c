package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-9

func TestPhong_FacingAway(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)

	tests := []struct {
		name      string
		toLight   core.Vec3
		view      core.Vec3
		shininess float64
	}{
		{"light and view below", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1), 10},
		{"oblique light and view below", core.NewVec3(0.6, 0, -0.8), core.NewVec3(-0.6, 0, -0.8), 5},
		{"zero exponent", core.NewVec3(0, 0.6, -0.8), core.NewVec3(0, 0, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phong(normal, tt.toLight, tt.view, 0.7, 0.3, tt.shininess); got != 0 {
				t.Errorf("Expected 0 for a surface facing away, got %f", got)
			}
		})
	}
}

func TestPhong_OppositeLightAndView(t *testing.T) {
	// The half-vector is undefined, so only the diffuse term remains
	got := phong(core.NewVec3(0, 0, 1), core.NewVec3(0.6, 0, 0.8), core.NewVec3(-0.6, 0, -0.8), 1, 1, 10)
	if math.Abs(got-0.8) > tolerance {
		t.Errorf("Expected diffuse-only 0.8, got %f", got)
	}
}

func TestPointLight_Illuminate(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(1, 0.5, 0))
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)
	hit := core.Hit{Point: core.NewVec3(0, 0, 0), Distance: 1}

	tests := []struct {
		channel  int
		expected float64
	}{
		{0, 0.75},
		{1, 0.375},
		{2, 0},
	}

	for _, tt := range tests {
		got := light.Illuminate(normal, view, hit, 0.5, 0.25, 10, tt.channel)
		if math.Abs(got-tt.expected) > tolerance {
			t.Errorf("Channel %d: expected %f, got %f", tt.channel, tt.expected, got)
		}
	}
}

func TestPointLight_DiffuseFollowsCosine(t *testing.T) {
	light := NewPointLight(core.NewVec3(3, 0, 4), core.NewVec3(1, 1, 1))
	hit := core.Hit{Point: core.NewVec3(0, 0, 0), Distance: 1}

	got := light.Illuminate(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), hit, 1, 0, 1, 0)
	if math.Abs(got-0.8) > tolerance {
		t.Errorf("Expected N·L = 0.8, got %f", got)
	}
}

func TestDirectionalLight_IndependentOfPosition(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 1, 0)
	view := core.NewVec3(0, 1, 0)

	if toLight := light.ToLight(core.NewVec3(100, -50, 3)); !toLight.Subtract(core.NewVec3(0, 1, 0)).IsZero() {
		t.Errorf("Expected light vector (0,1,0), got %v", toLight)
	}

	var first float64
	for i, point := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(10, 0, -3),
		core.NewVec3(-7, 0, 42),
	} {
		got := light.Illuminate(normal, view, core.Hit{Point: point, Distance: 1}, 0.6, 0.4, 20, 1)
		if i == 0 {
			first = got
			continue
		}
		if math.Abs(got-first) > tolerance {
			t.Errorf("At %v: expected %f, got %f", point, first, got)
		}
	}
	if math.Abs(first-1.0) > tolerance {
		t.Errorf("Expected full contribution 1.0, got %f", first)
	}
}

func TestAttenuatedLight_Illuminate(t *testing.T) {
	attenuation := Attenuation{Constant: 1, Linear: 1, Quadratic: 1}
	normal := core.NewVec3(0, 0, 1)
	hit := core.Hit{Point: core.NewVec3(0, 0, 0), Distance: 1}

	light := NewAttenuatedLight(core.NewVec3(0, 0, 2), core.NewVec3(1, 1, 1), attenuation)
	got := light.Illuminate(normal, normal, hit, 1, 0, 1, 0)
	if expected := 1.0 / 7; math.Abs(got-expected) > tolerance {
		t.Errorf("Expected 1/(1+2+4) = %f, got %f", expected, got)
	}

	// Directional lights have no distance to attenuate over
	directional := &AttenuatedLight{
		PointLight:  *NewDirectionalLight(core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1)),
		Attenuation: attenuation,
	}
	got = directional.Illuminate(normal, normal, hit, 1, 0, 1, 0)
	if math.Abs(got-1) > tolerance {
		t.Errorf("Expected unattenuated 1.0 for a directional light, got %f", got)
	}
}

func TestAttenuation_Factor(t *testing.T) {
	tests := []struct {
		name        string
		attenuation Attenuation
		distance    float64
		expected    float64
	}{
		{"constant only", Attenuation{Constant: 2}, 10, 0.5},
		{"linear only", Attenuation{Linear: 1}, 4, 0.25},
		{"quadratic only", Attenuation{Quadratic: 1}, 4, 1.0 / 16},
		{"all terms", Attenuation{1, 0.5, 0.25}, 2, 1.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attenuation.Factor(tt.distance); math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
