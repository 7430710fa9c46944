package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrEmptyScene is returned when a scene has no shapes to render
	ErrEmptyScene = errors.New("scene has no shapes")
	// ErrInvalidShape is returned when a shape cannot be intersected
	ErrInvalidShape = errors.New("invalid shape")
	// ErrUnknownScene is returned by Lookup for an unregistered preset name
	ErrUnknownScene = errors.New("unknown scene")
)

// Scene contains all the elements needed for rendering.
// It is read-only once rendering starts and may be shared by any number of workers.
type Scene struct {
	Shapes         []geometry.Shape // Objects in the scene
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns 10 samples per pixel and 50 bounces
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        50,
	}
}

// NewScene creates an empty scene with default camera and sampling settings
func NewScene() *Scene {
	return &Scene{
		Shapes:         make([]geometry.Shape, 0),
		CameraConfig:   geometry.DefaultCameraConfig(),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends a shape to the scene
func (s *Scene) Add(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddSphere creates a sphere and appends it to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float32, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Add(sphere)
	return sphere
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.Shapes)
}

// Hit returns the nearest intersection whose parameter lies strictly inside rayT.
// Each successful hit shrinks the search interval, so later shapes only win when closer.
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range s.Shapes {
		if hit, ok := shape.Hit(ray, rayT.WithMax(closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if len(s.Shapes) == 0 {
		return ErrEmptyScene
	}

	for i, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.Sphere:
			if obj == nil {
				return fmt.Errorf("%w: shape %d is a nil sphere", ErrInvalidShape, i)
			}
			if obj.Radius == 0 {
				return fmt.Errorf("%w: sphere %d has zero radius", ErrInvalidShape, i)
			}
			if obj.Material == nil {
				return fmt.Errorf("%w: sphere %d has no material", ErrInvalidShape, i)
			}
		default:
			return fmt.Errorf("%w: shape %d has unsupported type %T", ErrInvalidShape, i, shape)
		}
	}

	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene camera: %w", err)
	}
	if s.SamplingConfig.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", s.SamplingConfig.MaxDepth)
	}

	return nil
}
