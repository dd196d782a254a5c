package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadTexture loads a texture from a PPM, PNG or JPEG file, picking the
// decoder by extension
func LoadTexture(filename string) (*material.Texture, error) {
	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		return LoadPPM(filename)
	}
	return LoadImage(filename)
}

// LoadImage loads a PNG or JPEG image as a texture with channels in [0, 1]
func LoadImage(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return TextureFromImage(img), nil
}

// TextureFromImage converts any decoded image to a texture
func TextureFromImage(img image.Image) *material.Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return material.NewTexture(width, height, pixels)
}
