package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture is a width x height grid of RGB colors with channels in [0, 1].
// Pixels are row-major: Pixels[y*Width + x], with row 0 at v = 0.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewTexture creates a new texture
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At returns the texel in column x, row y
func (t *Texture) At(x, y int) core.Vec3 {
	return t.Pixels[y*t.Width+x]
}

// Sample looks up the texel nearest to (u, v) in [0,1]x[0,1].
// No interpolation: the index is round(u*(width-1)), round(v*(height-1)).
func (t *Texture) Sample(uv core.Vec2) core.Vec3 {
	x := int(math.Round(uv.X * float64(t.Width-1)))
	y := int(math.Round(uv.Y * float64(t.Height-1)))

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.At(x, y)
}
