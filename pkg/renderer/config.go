package renderer

import "time"

// RenderConfig controls how a render is parallelised and seeded
type RenderConfig struct {
	NumWorkers       int           // Number of worker goroutines (<= 0 means 1)
	Seed             int64         // Base seed; row r samples from a generator seeded with Seed+r
	ProgressInterval time.Duration // How often worker progress is polled (<= 0 means 100ms)
}

// DefaultRenderConfig returns a single-threaded configuration with seed 42
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:       1,
		Seed:             42,
		ProgressInterval: 100 * time.Millisecond,
	}
}

// normalized returns the config with out-of-range fields replaced by defaults
func (c RenderConfig) normalized() RenderConfig {
	if c.NumWorkers <= 0 {
		c.NumWorkers = 1
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = 100 * time.Millisecond
	}
	return c
}
