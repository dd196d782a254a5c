package loaders

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// SavePNG writes img to filename as a PNG
func SavePNG(filename string, img image.Image) error {
	bounds := img.Bounds()
	ctx := gg.NewContext(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			ctx.SetRGB255(int(r>>8), int(g>>8), int(b>>8))
			ctx.SetPixel(x-bounds.Min.X, y-bounds.Min.Y)
		}
	}

	if err := ctx.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", filename, err)
	}
	return nil
}
