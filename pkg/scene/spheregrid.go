package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a grid of rainbow-coloured metal spheres on a gray ground
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(4.5, 6, 18),
		LookAt:        core.NewVec3(4.5, 0.8, 4.5),
		Up:            core.NewVec3(0, 1, 0),
		Width:         800,
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		DefocusAngle:  0.5,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	s := NewScene()
	s.CameraConfig = applyOverrides(defaultCameraConfig, cameraOverrides)
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 100, MaxDepth: 40}

	// Ground sphere large enough to read as a plane
	s.AddSphere(core.NewVec3(4.5, -1000, 4.5), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	gridSize := 10
	targetArea := float32(9.0)
	spacing := targetArea / float32(gridSize-1)
	sphereRadius := min(max(spacing*0.35, 0.02), 0.35)

	// OKLCH parameters for color variation
	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2.0 + 4.5
			z := float32(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue varies across X, chroma across Z
			hue := float32(i) / float32(gridSize-1) * 360.0
			chroma := minChroma + float32(j)/float32(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			roughness := 0.05 + 0.1*float32((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			s.AddSphere(position, sphereRadius, metal)
		}
	}

	return s
}
