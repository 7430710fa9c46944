package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// maxWorkers caps the automatic worker count
const maxWorkers = 32

// options holds the parsed command line
type options struct {
	sceneType  string
	width      int
	spp        int
	depth      int
	workers    int
	seed       int64
	output     string
	cpuProfile string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene preset (see -help)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", 1, "Worker goroutines (0 = one per CPU)")
	flag.Int64Var(&opts.seed, "seed", renderer.DefaultRenderConfig().Seed, "Base random seed")
	flag.StringVar(&opts.output, "o", "", "Output file (.png, .jpg or .ppm); default output/<scene>/render_<timestamp>.png")
	flag.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-15s %s\n", info.ID, info.Description)
	}
}

func run(opts options) error {
	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	fmt.Println("Starting Path Tracer...")

	selectedScene, sceneID, err := createScene(opts.sceneType, opts.seed)
	if err != nil {
		return err
	}
	applySceneOverrides(selectedScene, opts)

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = resolveWorkers(opts.workers)
	config.Seed = opts.seed

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	fb, stats := raytracer.Render(nil)
	fmt.Printf("Samples per pixel: %d, total samples: %d, average luminance: %.3f\n",
		stats.SamplesPerPixel, stats.TotalSamples, renderer.CalculateAverageLuminance(fb))

	filename := opts.output
	if filename == "" {
		filename = defaultOutputPath(sceneID, time.Now())
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := writeImage(filename, fb); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds a preset scene by name and returns its canonical ID
func createScene(sceneType string, seed int64) (*scene.Scene, string, error) {
	info, err := scene.Lookup(sceneType)
	if err != nil {
		return nil, "", err
	}
	return info.Build(seed), info.ID, nil
}

// defaultOutputPath returns output/<sceneID>/render_<timestamp>.png
func defaultOutputPath(sceneID string, now time.Time) string {
	return filepath.Join("output", sceneID, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// applySceneOverrides replaces scene defaults with any values given on the command line
func applySceneOverrides(s *scene.Scene, opts options) {
	s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, geometry.CameraConfig{Width: opts.width})
	if opts.spp > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.spp
	}
	if opts.depth > 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
}

// resolveWorkers maps the -workers flag to a worker count; 0 means one per CPU
func resolveWorkers(requested int) int {
	if requested > 0 {
		return requested
	}
	return min(runtime.NumCPU(), maxWorkers)
}
