package renderer

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Empty pixel should be black")
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
	if !vecAlmostEqual(ps.GetColor(), core.NewVec3(0.5, 0.5, 0.5)) {
		t.Errorf("Expected average (0.5,0.5,0.5), got %v", ps.GetColor())
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(1, 1, 1))

	if lum := CalculateAverageLuminance(fb); math32.Abs(lum-0.5) > tolerance {
		t.Errorf("Expected average luminance 0.5, got %f", lum)
	}
	if lum := CalculateAverageLuminance(NewFramebuffer(0, 0)); lum != 0 {
		t.Errorf("Empty framebuffer should have zero luminance, got %f", lum)
	}
}
