package main

import (
	"bufio"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// writeImage encodes fb to filename, choosing the format from the extension
func writeImage(filename string, fb *renderer.Framebuffer) error {
	encode, err := encoderFor(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	if err := encode(file, fb); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}

type encodeFunc func(w io.Writer, fb *renderer.Framebuffer) error

func encoderFor(filename string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return func(w io.Writer, fb *renderer.Framebuffer) error {
			return png.Encode(w, fb.ToRGBA())
		}, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, fb *renderer.Framebuffer) error {
			return jpeg.Encode(w, fb.ToRGBA(), &jpeg.Options{Quality: 95})
		}, nil
	case ".ppm":
		return encodePPM, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .jpg or .ppm)", ext)
	}
}

// encodePPM writes an ASCII P3 image with a maximum channel value of 255
func encodePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			r, g, b := renderer.QuantizeColor(fb.At(col, row))
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}
	return bw.Flush()
}
