package renderer

import (
	"sync"
	"sync/atomic"
)

// WorkerPool renders row bands in parallel, one goroutine per band
type WorkerPool struct {
	workers []*Worker
	wg      sync.WaitGroup
}

// Worker renders a single band and publishes how many rows it has finished
type Worker struct {
	ID       int
	band     RowBand
	renderer *RowRenderer
	fb       *Framebuffer
	progress atomic.Int64 // Rows completed, only ever increases
}

// NewWorkerPool creates one worker per band. Bands must not overlap.
func NewWorkerPool(renderer *RowRenderer, fb *Framebuffer, bands []RowBand) *WorkerPool {
	wp := &WorkerPool{}
	for _, band := range bands {
		wp.workers = append(wp.workers, &Worker{
			ID:       band.ID,
			band:     band,
			renderer: renderer,
			fb:       fb,
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Wait blocks until every worker has finished its band
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// RowsCompleted returns the total rows finished across all workers.
// Safe to call while workers are running.
func (wp *WorkerPool) RowsCompleted() int {
	total := 0
	for _, worker := range wp.workers {
		total += int(worker.progress.Load())
	}
	return total
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// run renders the worker's band. Each band covers distinct rows, so writes to the
// shared framebuffer never overlap.
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	w.renderer.RenderBand(w.band, w.fb, &w.progress)
}
