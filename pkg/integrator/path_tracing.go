package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// shadowAcneEpsilon is the lower bound of the hit interval for every traced ray
const shadowAcneEpsilon = 0.001

var (
	skyHorizon = core.NewVec3(1.0, 1.0, 1.0)
	skyZenith  = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a hard depth cap
type PathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.trace(ray, pt.config.MaxDepth, scene, sampler)
}

func (pt *PathTracingIntegrator) trace(ray core.Ray, depth int, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.Hit(ray, core.NewInterval(shadowAcneEpsilon, math32.Inf(1)))
	if !isHit {
		return SkyColor(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.trace(scatter.Scattered, depth-1, scene, sampler))
}

// SkyColor returns the background gradient from white at the horizon to blue at the zenith
func SkyColor(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return skyHorizon.Multiply(1.0 - a).Add(skyZenith.Multiply(a))
}
