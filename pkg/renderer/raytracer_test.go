package renderer

import (
	"image/color"
	"runtime"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var testBackground = core.NewVec3(0.2, 0.3, 0.4)

// whiteSphereScene looks straight down at a white sphere lit from above
func whiteSphereScene(size int) *scene.Scene {
	s := scene.NewScene(geometry.CameraConfig{
		Eye:     core.NewVec3(0, 5, 0),
		ViewDir: core.NewVec3(0, -1, 0),
		UpDir:   core.NewVec3(0, 0, -1),
		VFov:    60,
		Width:   size,
		Height:  size,
	}, testBackground)

	white := material.NewMaterial(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), 0.2, 0.8, 0.2, 20)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white, nil))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)))
	return s
}

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"truncates", core.NewVec3(0.999, 0.5, 0.003), color.RGBA{254, 127, 0, 255}},
		{"clamps", core.NewVec3(-0.5, 2, 1.0001), color.RGBA{0, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vec3ToColor(tt.input); got != tt.expected {
				t.Errorf("vec3ToColor(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPixelBufferLinearIndex(t *testing.T) {
	buffer := NewPixelBuffer(4, 3)
	buffer.Set(2, 1, core.NewVec3(1, 0, 0))

	if idx := buffer.Index(2, 1); idx != 6 {
		t.Errorf("Index(2, 1) = %d, want 6", idx)
	}
	if buffer.Pixels[6] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red at linear index 6, got %v", buffer.Pixels[6])
	}
	if got := buffer.At(2, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("At(2, 1) = %v, want red", got)
	}
	if b := buffer.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("Expected 4x3 bounds, got %v", b)
	}
}

func TestRaytracer_WhiteSphere(t *testing.T) {
	s := whiteSphereScene(11)
	rt := NewRaytracer(s, nil)
	defer rt.Close()
	buffer, stats := rt.Render()

	center := buffer.Pixels[buffer.Index(5, 5)]
	if center.R < 240 || center.G < 240 || center.B < 240 {
		t.Errorf("Expected a near-white center pixel, got %v", center)
	}

	// Top-left corner misses the sphere and shows the background exactly
	if corner := buffer.Pixels[0]; corner != vec3ToColor(testBackground) {
		t.Errorf("Expected background %v, got %v", vec3ToColor(testBackground), corner)
	}

	if stats.TotalPixels != 121 || stats.Rows != 11 {
		t.Errorf("Expected 121 pixels in 11 rows, got %+v", stats)
	}
	if stats.BackgroundPixels == 0 || stats.BackgroundPixels >= stats.TotalPixels {
		t.Errorf("Expected some but not all background pixels, got %d", stats.BackgroundPixels)
	}
}

func TestRaytracer_DeterministicAcrossWorkers(t *testing.T) {
	s := scene.NewGlassScene()
	config := scene.DefaultSamplingConfig(24, 18)
	config.ShadowRays = 8

	// Shrink the camera so the test stays fast
	s.CameraConfig.Width, s.CameraConfig.Height = 24, 18
	s.Camera = geometry.NewCamera(s.CameraConfig)

	var buffers []*PixelBuffer
	for _, workers := range []int{1, 4} {
		config.Workers = workers
		rt := NewRaytracer(s, nil)
		rt.SetSamplingConfig(config)

		buffer, stats := rt.Render()
		rt.Close()
		if stats.Workers != workers {
			t.Errorf("Expected %d workers, got %d", workers, stats.Workers)
		}
		buffers = append(buffers, buffer)
	}

	for i := range buffers[0].Pixels {
		if buffers[0].Pixels[i] != buffers[1].Pixels[i] {
			t.Fatalf("Pixel %d differs between 1 and 4 workers: %v vs %v",
				i, buffers[0].Pixels[i], buffers[1].Pixels[i])
		}
	}
}

func TestRaytracer_RenderRow(t *testing.T) {
	s := whiteSphereScene(5)
	rt := NewRaytracer(s, nil)
	defer rt.Close()
	buffer := NewPixelBuffer(5, 5)

	stats := rt.RenderRow(buffer, 0)
	if stats.TotalPixels != 5 || stats.Rows != 1 {
		t.Errorf("Expected one row of 5 pixels, got %+v", stats)
	}

	// Other rows stay untouched
	if buffer.Pixels[buffer.Index(2, 2)] != (color.RGBA{}) {
		t.Errorf("Expected untouched pixel, got %v", buffer.Pixels[buffer.Index(2, 2)])
	}
}

func TestWorkerPool_RunsEveryTask(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Stop()
	done := make([]bool, 50)

	pool.Run(len(done), func(i int) {
		done[i] = true
	})

	for i, ok := range done {
		if !ok {
			t.Errorf("Task %d did not run", i)
		}
	}
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_StopReleasesWorkers(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 10; i++ {
		pool := NewWorkerPool(4)
		pool.Run(8, func(int) {})
		pool.Stop()
	}

	// Workers exit asynchronously after Stop
	deadline := time.Now().Add(3 * time.Second)
	for runtime.NumGoroutine() > before+2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("Expected workers to exit after Stop, goroutines went from %d to %d", before, after)
	}
}

func TestRaytracer_ReusesPoolAcrossRenders(t *testing.T) {
	s := whiteSphereScene(4)
	rt := NewRaytracer(s, nil)
	pool := rt.pool

	rt.Render()
	rt.Render()
	if rt.pool != pool {
		t.Error("Expected repeated renders to share one worker pool")
	}

	config := rt.config
	config.Workers = rt.config.Workers + 1
	rt.SetSamplingConfig(config)
	if rt.pool == pool || rt.pool.GetNumWorkers() != config.Workers {
		t.Errorf("Expected a new pool with %d workers after changing the worker count", config.Workers)
	}
	rt.Close()
}
