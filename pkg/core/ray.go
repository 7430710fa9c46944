package core

import (
	"github.com/chewxy/math32"
)

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Interval is a range of ray parameters [Min, Max]
type Interval struct {
	Min, Max float32
}

var (
	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math32.Inf(-1), Max: math32.Inf(1)}
	// EmptyInterval contains no value
	EmptyInterval = Interval{Min: math32.Inf(1), Max: math32.Inf(-1)}
)

// NewInterval creates a new interval
func NewInterval(minVal, maxVal float32) Interval {
	return Interval{Min: minVal, Max: maxVal}
}

// Size returns the width of the interval
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return !(i.Min <= i.Max)
}

// Contains reports whether x lies in the closed interval
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval bounds
func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval) WithMax(maxVal float32) Interval {
	return Interval{Min: i.Min, Max: maxVal}
}
