package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a checkerboard of checkSize-texel squares,
// starting with color1 in the v = 0, u = 0 corner
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *Texture {
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture maps u to red and v to green
func NewUVDebugTexture(width, height int) *Texture {
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		u := float64(x) / float64(max(1, width-1))
		v := float64(y) / float64(max(1, height-1))
		return core.NewVec3(u, v, 0)
	})
}

// NewGradientTexture blends from color1 at v = 0 to color2 at v = 1
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *Texture {
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		t := float64(y) / float64(max(1, height-1))
		return color1.Multiply(1 - t).Add(color2.Multiply(t))
	})
}

func generateTexture(width, height int, texel func(x, y int) core.Vec3) *Texture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = texel(x, y)
		}
	}
	return NewTexture(width, height, pixels)
}
