package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PixelBuffer holds the rendered 8-bit pixels. Pixel (col, row) lives at
// index col + row*Width; row 0 is the top of the image.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// NewPixelBuffer creates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Index returns the linear index of pixel (col, row)
func (b *PixelBuffer) Index(col, row int) int {
	return col + row*b.Width
}

// Set stores a shaded color, clamped to [0, 1] and truncated to 0..255
func (b *PixelBuffer) Set(col, row int, c core.Vec3) {
	b.Pixels[b.Index(col, row)] = vec3ToColor(c)
}

// ColorModel implements image.Image
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image
func (b *PixelBuffer) At(x, y int) color.Color {
	return b.Pixels[b.Index(x, y)]
}

// vec3ToColor converts a Vec3 color to RGBA, clamping each channel
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// Raytracer renders a scene one primary ray per pixel
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     scene.SamplingConfig
	pool       *WorkerPool
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the scene's sampling config and a
// Whitted integrator. A nil logger discards messages. Close releases the
// raytracer's workers.
func NewRaytracer(s *scene.Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integrator.NewWhittedIntegrator(s.SamplingConfig),
		config:     s.SamplingConfig,
		pool:       NewWorkerPool(s.SamplingConfig.Workers),
		logger:     logger,
	}
}

// SetSamplingConfig replaces the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config scene.SamplingConfig) {
	if config.Workers != rt.config.Workers {
		rt.pool.Stop()
		rt.pool = NewWorkerPool(config.Workers)
	}
	rt.config = config
	rt.integrator = integrator.NewWhittedIntegrator(config)
}

// Close stops the worker pool
func (rt *Raytracer) Close() {
	rt.pool.Stop()
}

// Render traces every pixel, splitting rows across a worker pool. Each row
// has its own sampler seeded from Seed and the row number, so the result
// does not depend on the worker count.
func (rt *Raytracer) Render() (*PixelBuffer, RenderStats) {
	start := time.Now()
	width, height := rt.scene.Camera.Size()
	buffer := NewPixelBuffer(width, height)

	pool := rt.pool
	rowStats := make([]RenderStats, height)

	rt.logger.Printf("Rendering %dx%d with %d workers, depth %d, %d shadow rays\n",
		width, height, pool.GetNumWorkers(), rt.config.Depth(), max(1, rt.config.ShadowRays))

	// Rows write disjoint pixels and their own stats slot
	pool.Run(height, func(row int) {
		rowStats[row] = rt.RenderRow(buffer, row)
	})

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for _, row := range rowStats {
		stats.add(row)
	}
	stats.Elapsed = time.Since(start)

	rt.logger.Printf("Render complete: %s\n", stats)
	return buffer, stats
}

// RenderRow traces one row of the image into buffer
func (rt *Raytracer) RenderRow(buffer *PixelBuffer, row int) RenderStats {
	sampler := core.NewSeededSampler(rt.config.Seed + int64(row))
	stats := RenderStats{Rows: 1}

	for col := 0; col < buffer.Width; col++ {
		ray := rt.scene.Camera.GetRay(col, row)
		if _, surface := integrator.ClosestHit(rt.scene.Surfaces, ray); surface == nil {
			stats.BackgroundPixels++
		}

		buffer.Set(col, row, rt.integrator.RayColor(ray, rt.scene, sampler))
		stats.TotalPixels++
	}

	return stats
}
