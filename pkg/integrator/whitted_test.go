package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var testBackground = core.NewVec3(0.2, 0.3, 0.4)

func newTestScene(eye, viewDir, upDir core.Vec3, size int) *scene.Scene {
	return scene.NewScene(geometry.CameraConfig{
		Eye:     eye,
		ViewDir: viewDir,
		UpDir:   upDir,
		VFov:    60,
		Width:   size,
		Height:  size,
	}, testBackground)
}

// ambientOnly returns an opaque material that shows its color regardless of lighting
func ambientOnly(color core.Vec3) *material.Material {
	return material.NewMaterial(color, core.NewVec3(0, 0, 0), 1, 0, 0, 1)
}

func render(s *scene.Scene, col, row int) core.Vec3 {
	integrator := NewWhittedIntegrator(s.SamplingConfig)
	return integrator.RayColor(s.Camera.GetRay(col, row), s, core.NewSeededSampler(1))
}

func TestWhitted_WhiteSphereUnderDirectionalLight(t *testing.T) {
	// Looking straight down at the lit top of the sphere
	s := newTestScene(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), core.NewVec3(0, 0, -1), 11)
	white := material.NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 0.2, 0.8, 0.2, 20)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white, nil))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)))

	center := render(s, 5, 5)
	if center.X < 0.95 || center.Y < 0.95 || center.Z < 0.95 {
		t.Errorf("Expected a near-white lit pixel, got %v", center)
	}

	if corner := render(s, 0, 0); corner != testBackground {
		t.Errorf("Expected background %v beyond the silhouette, got %v", testBackground, corner)
	}
}

func TestWhitted_MissReturnsBackground(t *testing.T) {
	s := newTestScene(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 3)
	integrator := NewWhittedIntegrator(s.SamplingConfig)

	got := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), s, core.NewSeededSampler(1))
	if got != testBackground {
		t.Errorf("Expected background %v for an empty scene, got %v", testBackground, got)
	}
}

// mirrorScene has a dark mirror sphere at the origin, a red sphere behind the
// eye for it to reflect and a green sphere behind it to see through it
func mirrorScene(opacity float64) *scene.Scene {
	s := newTestScene(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 1)
	mirror := material.NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 0, 0, 0, 1).
		WithTransparency(opacity, 9)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mirror, nil),
		geometry.NewSphere(core.NewVec3(0, 0, 10), 1, ambientOnly(core.NewVec3(1, 0, 0)), nil),
		geometry.NewSphere(core.NewVec3(0, 0, -10), 1, ambientOnly(core.NewVec3(0, 1, 0)), nil),
	)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 10, 5), core.NewVec3(0, 0, 1)))
	return s
}

func TestWhitted_OpaqueMirror(t *testing.T) {
	s := mirrorScene(1)
	got := render(s, 0, 0)

	// Head-on Fresnel reflectance is ((9-1)/(9+1))² = 0.64
	expected := core.NewVec3(0.64, 0, 0)
	if got.Subtract(expected).Length() > 1e-6 {
		t.Errorf("Expected reflection-only color %v, got %v", expected, got)
	}
	if got.X <= got.Y || got.X <= got.Z {
		t.Errorf("Expected the reflected red to dominate, got %v", got)
	}
}

func TestWhitted_OpacityGatesTransmission(t *testing.T) {
	opaque := render(mirrorScene(1), 0, 0)
	if opaque.Y != 0 {
		t.Errorf("Opaque surface: expected no transmitted green, got %v", opaque)
	}

	clear := render(mirrorScene(0), 0, 0)
	if clear.Y <= 0 {
		t.Errorf("Transparent surface: expected transmitted green, got %v", clear)
	}
}

func TestWhitted_DepthCap(t *testing.T) {
	s := mirrorScene(1)
	s.SamplingConfig.MaxDepth = 0

	// At the cap only local lighting remains, and the mirror has none
	if got := render(s, 0, 0); got != (core.Vec3{}) {
		t.Errorf("Expected black with recursion disabled, got %v", got)
	}

	s.SamplingConfig.MaxDepth = 1000
	if depth := s.SamplingConfig.Depth(); depth != scene.MaxDepthLimit {
		t.Errorf("Expected depth to be capped at %d, got %d", scene.MaxDepthLimit, depth)
	}
}

func TestWhitted_TotalInternalReflection(t *testing.T) {
	// A ray inside a dense sphere meeting its surface at a grazing angle
	// cannot leave, so nothing beyond the sphere shows through
	s := newTestScene(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 1)
	glass := material.NewMaterial(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 0, 0, 0, 1).
		WithTransparency(0, 2.4)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, glass, nil),
		geometry.NewSphere(core.NewVec3(10, 0.9, 0), 1, ambientOnly(core.NewVec3(0, 1, 0)), nil),
	)
	s.SamplingConfig.MaxDepth = 1

	// Starts inside the sphere heading for (1,0.9,0) ... at the surface point
	// (sqrt(1-0.81), 0.9, 0) the angle to the normal is about 64 degrees,
	// past the 24.6 degree critical angle for 2.4
	origin := core.NewVec3(0, 0.9, 0)
	ray := core.NewRay(origin, core.NewVec3(1, 0, 0))

	stack := NewIndexStack(1)
	stack.Push(2.4)
	got := NewWhittedIntegrator(s.SamplingConfig).Trace(ray, s, core.NewSeededSampler(1), stack)
	if got.Y != 0 {
		t.Errorf("Expected no green through a totally reflecting surface, got %v", got)
	}
	if stack.Len() != 2 {
		t.Errorf("Expected the stack depth to be restored to 2, got %d", stack.Len())
	}
}

func TestClosestHit(t *testing.T) {
	mat := ambientOnly(core.NewVec3(1, 1, 1))
	far := geometry.NewSphere(core.NewVec3(0, 0, -10), 1, mat, nil)
	near := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat, nil)
	twin := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, surface := ClosestHit([]geometry.Surface{far, near, twin}, ray)
	if surface != near {
		t.Errorf("Expected the nearest (and first of equals) surface")
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}

	if _, surface := ClosestHit(nil, ray); surface != nil {
		t.Errorf("Expected no surface for an empty list, got %v", surface)
	}
}

func TestWhitted_IndexStackBalance(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomVec := func(scale float64) core.Vec3 {
		return core.NewVec3(
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
			(random.Float64()*2-1)*scale,
		)
	}

	for trial := 0; trial < 25; trial++ {
		s := newTestScene(core.NewVec3(0, 0, 8), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 8)
		s.AmbientIndex = 1 + random.Float64()*0.5
		s.SamplingConfig.MaxDepth = 1 + random.Intn(6)

		for i := 0; i < 6; i++ {
			mat := material.NewMaterial(
				core.NewVec3(random.Float64(), random.Float64(), random.Float64()),
				core.NewVec3(1, 1, 1),
				0.1, 0.5, 0.4, 10,
			).WithTransparency(random.Float64(), 1+random.Float64()*1.5)

			switch i % 3 {
			case 0:
				s.Add(geometry.NewSphere(randomVec(3), 0.5+random.Float64(), mat, nil))
			case 1:
				radii := core.NewVec3(0.5+random.Float64(), 0.5+random.Float64(), 0.5+random.Float64())
				s.Add(geometry.NewEllipsoid(randomVec(3), radii, mat, nil))
			default:
				s.Add(geometry.NewTriangle(randomVec(4), randomVec(4), randomVec(4), mat))
			}
		}
		s.AddLight(lights.NewPointLight(randomVec(10), core.NewVec3(1, 1, 1)))

		integrator := NewWhittedIntegrator(s.SamplingConfig)
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				stack := NewIndexStack(s.AmbientIndex)
				integrator.Trace(s.Camera.GetRay(col, row), s, core.NewSeededSampler(int64(row)), stack)

				if stack.Len() != 1 || stack.Top() != s.AmbientIndex {
					t.Fatalf("Trial %d pixel (%d,%d): expected stack [%f], got len=%d top=%f",
						trial, col, row, s.AmbientIndex, stack.Len(), stack.Top())
				}
			}
		}
	}
}

func TestWhitted_RefractsOnExitAfterInternalReflection(t *testing.T) {
	// Inside a glass sphere the ray reflects at A = (sqrt(0.75), 0.5, 0),
	// reaches B = (0, -1, 0) at 30 degrees to the normal and leaves bent to
	// asin(1.5 * 0.5), about 48.6 degrees. Green sits on the bent path and
	// red on the unbent one.
	s := newTestScene(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 1)
	s.Background = core.Vec3{}
	glass := material.NewMaterial(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 0, 0, 0, 1).
		WithTransparency(0, 1.5)
	exitPoint := core.NewVec3(0, -1, 0)
	bent := core.NewVec3(-0.75, -math.Sqrt(1-0.75*0.75), 0)
	straight := core.NewVec3(-0.5, -math.Sqrt(0.75), 0)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, glass, nil),
		geometry.NewSphere(exitPoint.Add(bent.Multiply(10)), 1, ambientOnly(core.NewVec3(0, 1, 0)), nil),
		geometry.NewSphere(exitPoint.Add(straight.Multiply(10)), 1, ambientOnly(core.NewVec3(1, 0, 0)), nil),
	)
	s.SamplingConfig.MaxDepth = 2

	stack := NewIndexStack(1)
	stack.Push(1.5)
	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(1, 0, 0))
	got := NewWhittedIntegrator(s.SamplingConfig).Trace(ray, s, core.NewSeededSampler(1), stack)

	if got.X != 0 {
		t.Errorf("Expected no red from an unrefracted exit, got %v", got)
	}
	if got.Y <= 0 {
		t.Errorf("Expected green along the refracted exit, got %v", got)
	}
	if stack.Len() != 2 || stack.Top() != 1.5 {
		t.Errorf("Expected the stack restored to [1 1.5], got len=%d top=%g", stack.Len(), stack.Top())
	}
}
