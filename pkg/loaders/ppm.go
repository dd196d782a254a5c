package loaders

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"unicode"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadPPM loads a P3 (ASCII) or P6 (binary) PPM file as a texture
func LoadPPM(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	texture, err := ReadPPM(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return texture, nil
}

// ReadPPM decodes a P3 or P6 PPM stream. Channels are divided by the
// stream's maximum value, so they land in [0, 1].
func ReadPPM(r io.Reader) (*material.Texture, error) {
	reader := bufio.NewReader(r)

	magic, err := ppmToken(reader)
	if err != nil {
		return nil, fmt.Errorf("missing PPM header: %w", err)
	}
	if magic != "P3" && magic != "P6" {
		return nil, fmt.Errorf("unsupported PPM format %q", magic)
	}

	header := make([]int, 3)
	for i, name := range []string{"width", "height", "maximum value"} {
		token, err := ppmToken(reader)
		if err != nil {
			return nil, fmt.Errorf("missing PPM %s: %w", name, err)
		}
		header[i], err = strconv.Atoi(token)
		if err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("invalid PPM %s %q", name, token)
		}
	}
	width, height, maxValue := header[0], header[1], header[2]
	if maxValue > 255 {
		return nil, fmt.Errorf("PPM maximum value %d above 255 is not supported", maxValue)
	}

	pixels := make([]core.Vec3, width*height)
	scale := 1 / float64(maxValue)

	if magic == "P6" {
		data := make([]byte, 3*len(pixels))
		if _, err := io.ReadFull(reader, data); err != nil {
			return nil, fmt.Errorf("truncated PPM pixel data: %w", err)
		}
		for i := range pixels {
			pixels[i] = core.NewVec3(
				float64(data[3*i])*scale,
				float64(data[3*i+1])*scale,
				float64(data[3*i+2])*scale,
			)
		}
		return material.NewTexture(width, height, pixels), nil
	}

	var rgb [3]float64
	for i := range pixels {
		for c := range rgb {
			token, err := ppmToken(reader)
			if err != nil {
				return nil, fmt.Errorf("truncated PPM pixel data at pixel %d: %w", i, err)
			}
			value, err := strconv.Atoi(token)
			if err != nil || value < 0 || value > maxValue {
				return nil, fmt.Errorf("invalid PPM sample %q at pixel %d", token, i)
			}
			rgb[c] = float64(value) * scale
		}
		pixels[i] = core.NewVec3(rgb[0], rgb[1], rgb[2])
	}

	return material.NewTexture(width, height, pixels), nil
}

// ppmToken returns the next whitespace-separated token, skipping # comments.
// For the last header token the single whitespace byte after it is consumed,
// which is where P6 pixel data begins.
func ppmToken(reader *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}

		switch {
		case b == '#' && len(token) == 0:
			if _, err := reader.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case unicode.IsSpace(rune(b)):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

// WritePPM writes img as an ASCII P3 PPM: the header, then one "r g b" line
// per pixel in row-major order
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(out, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
	}

	return out.Flush()
}

// SavePPM writes img to filename as an ASCII P3 PPM
func SavePPM(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create PPM file: %w", err)
	}

	if err := WritePPM(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}
