package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot produce a viewport
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig contains the user-level camera parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	Width         int       // Image width in pixels
	AspectRatio   float32   // Width / height ratio
	VFov          float32   // Vertical field of view in degrees
	DefocusAngle  float32   // Variation angle of rays through each pixel in degrees (0 = pinhole)
	FocusDistance float32   // Distance to the plane of perfect focus (0 = distance to LookAt)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Validate reports whether the configuration describes a usable viewport
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidCamera, c.Width)
	case !(c.AspectRatio > 0) || math32.IsInf(c.AspectRatio, 1):
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidCamera, c.AspectRatio)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical fov must be in (0, 180), got %g", ErrInvalidCamera, c.VFov)
	case !(c.DefocusAngle >= 0 && c.DefocusAngle < 180):
		return fmt.Errorf("%w: defocus angle must be in [0, 180), got %g", ErrInvalidCamera, c.DefocusAngle)
	case c.FocusDistance < 0:
		return fmt.Errorf("%w: focus distance must not be negative, got %g", ErrInvalidCamera, c.FocusDistance)
	}

	viewDir := c.LookFrom.Subtract(c.LookAt)
	if viewDir.NearZero() {
		return fmt.Errorf("%w: look-from and look-at coincide at %v", ErrInvalidCamera, c.LookFrom)
	}
	if c.Up.Cross(viewDir).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, c.Up)
	}
	return nil
}

// Camera generates primary rays. It is immutable after construction and
// safe for concurrent use.
type Camera struct {
	config       CameraConfig
	imageHeight  int       // Rendered image height
	center       core.Vec3 // Camera center
	pixel00Loc   core.Vec3 // Location of pixel 0, 0
	pixelDeltaU  core.Vec3 // Offset to pixel to the right
	pixelDeltaV  core.Vec3 // Offset to pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from a configuration.
// The configuration must pass Validate.
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.initialize()
	return c
}

func (c *Camera) initialize() {
	cfg := c.config

	c.imageHeight = max(int(float32(cfg.Width)/cfg.AspectRatio), 1)
	c.center = cfg.LookFrom

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.LookFrom.Subtract(cfg.LookAt).Length()
	}

	// Viewport dimensions
	theta := core.DegreesToRadians(cfg.VFov)
	h := math32.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * (float32(cfg.Width) / float32(c.imageHeight))

	// Orthonormal basis; w points from LookAt back to the camera
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float32(cfg.Width))
	c.pixelDeltaV = viewportV.Divide(float32(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math32.Tan(core.DegreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// GetRay returns a ray from the defocus disk through a random point in the
// square around pixel (col, row)
func (c *Camera) GetRay(col, row int, sampler core.Sampler) core.Ray {
	px := sampler.Get1D() - 0.5
	py := sampler.Get1D() - 0.5

	pixelSample := c.PixelCenter(col, row).
		Add(c.pixelDeltaU.Multiply(px)).
		Add(c.pixelDeltaV.Multiply(py))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// PixelCenter returns the world-space center of pixel (col, row) on the focus plane
func (c *Camera) PixelCenter(col, row int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float32(col))).
		Add(c.pixelDeltaV.Multiply(float32(row)))
}

// ImageWidth returns the rendered image width
func (c *Camera) ImageWidth() int { return c.config.Width }

// ImageHeight returns the rendered image height
func (c *Camera) ImageHeight() int { return c.imageHeight }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// DefocusRadius returns the radius of the defocus disk
func (c *Camera) DefocusRadius() float32 { return c.defocusDiskU.Length() }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }
