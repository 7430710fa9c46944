package renderer

import (
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// intensity keeps stored channels below 1 so quantisation never reaches 256
var intensity = core.NewInterval(0, 0.999)

// RowRenderer renders whole image rows using an integrator
type RowRenderer struct {
	scene           *scene.Scene
	camera          *geometry.Camera
	integrator      integrator.Integrator
	samplesPerPixel int
	seed            int64
}

// NewRowRenderer creates a row renderer. All fields are read-only during rendering,
// so one RowRenderer can serve every worker.
func NewRowRenderer(scene *scene.Scene, camera *geometry.Camera, integratorInst integrator.Integrator, samplesPerPixel int, seed int64) *RowRenderer {
	return &RowRenderer{
		scene:           scene,
		camera:          camera,
		integrator:      integratorInst,
		samplesPerPixel: samplesPerPixel,
		seed:            seed,
	}
}

// RenderBand renders every row of band into fb, adding one to progress per finished row
func (rr *RowRenderer) RenderBand(band RowBand, fb *Framebuffer, progress *atomic.Int64) {
	for row := band.StartRow; row < band.EndRow; row++ {
		rr.RenderRow(row, fb)
		progress.Add(1)
	}
}

// RenderRow renders a single row. The sampler is seeded from the row index alone,
// so a row's pixels do not depend on which worker renders it.
func (rr *RowRenderer) RenderRow(row int, fb *Framebuffer) {
	sampler := core.NewSeededSampler(rr.seed + int64(row))

	for col := 0; col < fb.Width; col++ {
		var ps PixelStats
		for s := 0; s < rr.samplesPerPixel; s++ {
			ray := rr.camera.GetRay(col, row, sampler)
			ps.AddSample(rr.integrator.RayColor(ray, rr.scene, sampler))
		}
		fb.Set(col, row, ToneMap(ps.GetColor()))
	}
}

// ToneMap converts an averaged linear color into display space: gamma 2, then
// each channel clamped to [0, 0.999]
func ToneMap(c core.Vec3) core.Vec3 {
	return c.LinearToGamma().Clamp(intensity.Min, intensity.Max)
}
