package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// The set of shapes is closed: *Sphere is currently the only variant.
type Shape interface {
	// Hit reports the intersection closest to the ray origin whose parameter
	// lies strictly inside rayT.
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)

	isShape()
}
