package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer validates the scene and prepares its camera for rendering
func NewRaytracer(scene *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if scene == nil {
		return nil, fmt.Errorf("new raytracer: nil scene")
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("new raytracer: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      scene,
		camera:     geometry.NewCamera(scene.CameraConfig),
		integrator: integrator.NewPathTracingIntegrator(scene.SamplingConfig),
		config:     config.normalized(),
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Width returns the output image width
func (rt *Raytracer) Width() int { return rt.camera.ImageWidth() }

// Height returns the output image height
func (rt *Raytracer) Height() int { return rt.camera.ImageHeight() }

// Render renders the full image and blocks until every worker has finished.
// onProgress may be nil.
func (rt *Raytracer) Render(onProgress ProgressFunc) (*Framebuffer, RenderStats) {
	startTime := time.Now()
	width, height := rt.Width(), rt.Height()
	spp := rt.scene.SamplingConfig.SamplesPerPixel

	fb := NewFramebuffer(width, height)
	bands := NewRowBands(height, rt.config.NumWorkers)
	rowRenderer := NewRowRenderer(rt.scene, rt.camera, rt.integrator, spp, rt.config.Seed)
	pool := NewWorkerPool(rowRenderer, fb, bands)

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, max depth %d (using %d workers)...\n",
		width, height, spp, rt.scene.SamplingConfig.MaxDepth, pool.GetNumWorkers())
	if radius := rt.camera.DefocusRadius(); radius > 0 {
		rt.logger.Printf("Depth of field: lens radius %.4f\n", radius)
	}

	tracker := newProgressTracker(height, func(update ProgressUpdate) {
		if update.Percent < 100 {
			rt.logger.Printf("\rScanline progress... %3d%%", update.Percent)
		} else {
			rt.logger.Printf("\rScanline progress... DONE\n")
		}
		if onProgress != nil {
			onProgress(update)
		}
	})

	done := make(chan struct{})
	pool.Start()
	go func() {
		pool.Wait()
		close(done)
	}()

	rt.monitorProgress(pool, tracker, done)
	tracker.finish()

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * spp,
		SamplesPerPixel: spp,
		NumWorkers:      pool.GetNumWorkers(),
		Elapsed:         time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v\n", stats.Elapsed)

	return fb, stats
}

// monitorProgress polls worker counters until done is closed
func (rt *Raytracer) monitorProgress(pool *WorkerPool, tracker *progressTracker, done <-chan struct{}) {
	ticker := time.NewTicker(rt.config.ProgressInterval)
	defer ticker.Stop()

	tracker.observe(0)
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			tracker.observe(pool.RowsCompleted())
		}
	}
}
