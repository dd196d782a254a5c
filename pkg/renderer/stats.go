package renderer

import (
	"fmt"
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	BackgroundPixels int           // Pixels whose primary ray hit nothing
	Rows             int           // Rows rendered
	Workers          int           // Workers used
	Elapsed          time.Duration // Wall-clock render time
}

// add merges the counts of one row into the totals
func (s *RenderStats) add(row RenderStats) {
	s.TotalPixels += row.TotalPixels
	s.BackgroundPixels += row.BackgroundPixels
	s.Rows += row.Rows
}

// String summarizes the stats for logging
func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels (%d background) in %d rows on %d workers, %v",
		s.TotalPixels, s.BackgroundPixels, s.Rows, s.Workers, s.Elapsed.Round(time.Millisecond))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img,
// with channels scaled to [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535.0
		}
	}

	return total / float64(count)
}
