package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	NumWorkers      int           // Worker goroutines actually used
	Elapsed         time.Duration // Wall-clock render time
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator in linear radiance
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float32(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean luminance of the framebuffer
func CalculateAverageLuminance(fb *Framebuffer) float32 {
	if len(fb.Pixels) == 0 {
		return 0
	}

	var total float32
	for _, c := range fb.Pixels {
		total += c.Luminance()
	}
	return total / float32(len(fb.Pixels))
}
