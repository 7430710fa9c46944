package renderer

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer holds tone-mapped pixel colors in row-major order with the origin
// at the top-left. Channels lie in [0, 0.999].
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (col, row)
func (fb *Framebuffer) At(col, row int) core.Vec3 {
	return fb.Pixels[row*fb.Width+col]
}

// Set stores the color of pixel (col, row). Workers only write rows they own.
func (fb *Framebuffer) Set(col, row int, c core.Vec3) {
	fb.Pixels[row*fb.Width+col] = c
}

// ToRGBA quantises the framebuffer to 8-bit channels for image encoders
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			r, g, b := QuantizeColor(fb.At(col, row))
			img.SetRGBA(col, row, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// QuantizeColor maps each channel of a tone-mapped color to [0, 255]
func QuantizeColor(c core.Vec3) (r, g, b uint8) {
	return quantizeChannel(c.X), quantizeChannel(c.Y), quantizeChannel(c.Z)
}

func quantizeChannel(v float32) uint8 {
	v = intensity.Clamp(v)
	return uint8(math32.Floor(v * 255.999))
}
