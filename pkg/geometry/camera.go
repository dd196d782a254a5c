package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// viewDistance is the distance from the eye to the viewing window; any
// positive value gives the same rays
const viewDistance = 2.0

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Eye     core.Vec3 // Eye position
	ViewDir core.Vec3 // Viewing direction
	UpDir   core.Vec3 // Up direction
	VFov    float64   // Vertical field of view in degrees
	Width   int       // Image width in pixels
	Height  int       // Image height in pixels
}

// Validate rejects configurations that cannot produce a viewing window
func (c CameraConfig) Validate() error {
	if c.ViewDir.IsZero() {
		return fmt.Errorf("viewing direction is the zero vector")
	}
	if c.UpDir.IsZero() {
		return fmt.Errorf("up direction is the zero vector")
	}
	if c.ViewDir.Cross(c.UpDir).IsZero() {
		return fmt.Errorf("up and viewing directions are parallel")
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("field of view %g is not within (0, 180) degrees", c.VFov)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size %dx%d has a non-positive dimension", c.Width, c.Height)
	}
	return nil
}

// Camera generates one primary ray per pixel through a perspective viewing window
type Camera struct {
	eye        core.Vec3
	upperLeft  core.Vec3 // Upper-left corner of the viewing window
	pixelRight core.Vec3 // Step between horizontally adjacent pixel centers
	pixelDown  core.Vec3 // Step between vertically adjacent pixel centers
	width      int
	height     int
}

// NewCamera builds the viewing window from the configuration.
// The configuration must pass Validate.
func NewCamera(config CameraConfig) *Camera {
	eye := toMgl(config.Eye)
	view := toMgl(config.ViewDir).Normalize()
	up := toMgl(config.UpDir).Normalize()

	h := 2 * viewDistance * math.Tan(config.VFov*math.Pi/360)
	w := h * float64(config.Width) / float64(config.Height)

	u := view.Cross(up).Normalize()
	v := u.Cross(view).Normalize()

	halfU := u.Mul(w / 2)
	halfV := v.Mul(h / 2)
	center := eye.Add(view.Mul(viewDistance))

	upperLeft := center.Sub(halfU).Add(halfV)
	upperRight := center.Add(halfU).Add(halfV)
	lowerLeft := center.Sub(halfU).Sub(halfV)

	return &Camera{
		eye:        config.Eye,
		upperLeft:  fromMgl(upperLeft),
		pixelRight: fromMgl(upperRight.Sub(upperLeft).Mul(1 / float64(config.Width))),
		pixelDown:  fromMgl(lowerLeft.Sub(upperLeft).Mul(1 / float64(config.Height))),
		width:      config.Width,
		height:     config.Height,
	}
}

// GetRay returns the unit primary ray through the center of pixel (col, row).
// Row 0 is the top of the image.
func (c *Camera) GetRay(col, row int) core.Ray {
	target := c.upperLeft.
		Add(c.pixelRight.Multiply(float64(col) + 0.5)).
		Add(c.pixelDown.Multiply(float64(row) + 0.5))

	return core.NewRay(c.eye, target.Subtract(c.eye).Normalize())
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 {
	return c.eye
}

// Size returns the image dimensions in pixels
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v.X(), v.Y(), v.Z())
}
