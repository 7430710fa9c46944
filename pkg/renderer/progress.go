package renderer

// ProgressUpdate reports how far a render has advanced
type ProgressUpdate struct {
	RowsCompleted int
	TotalRows     int
	Percent       int // 0-100, never decreases during a render
}

// ProgressFunc receives progress updates on the goroutine that called Render
type ProgressFunc func(ProgressUpdate)

// progressTracker turns polled row counts into non-decreasing updates
type progressTracker struct {
	totalRows   int
	lastPercent int
	onProgress  ProgressFunc
}

func newProgressTracker(totalRows int, onProgress ProgressFunc) *progressTracker {
	return &progressTracker{
		totalRows:   totalRows,
		lastPercent: -1,
		onProgress:  onProgress,
	}
}

// observe reports a new row count. It returns true when the percentage advanced.
// 100% is held back for finish so that exactly one final update follows completion.
func (pt *progressTracker) observe(rowsCompleted int) bool {
	update := pt.update(rowsCompleted)
	if update.Percent <= pt.lastPercent || update.Percent >= 100 {
		return false
	}
	pt.lastPercent = update.Percent
	if pt.onProgress != nil {
		pt.onProgress(update)
	}
	return true
}

// finish emits the final 100% update
func (pt *progressTracker) finish() {
	pt.lastPercent = 100
	if pt.onProgress != nil {
		pt.onProgress(ProgressUpdate{
			RowsCompleted: pt.totalRows,
			TotalRows:     pt.totalRows,
			Percent:       100,
		})
	}
}

func (pt *progressTracker) update(rowsCompleted int) ProgressUpdate {
	rowsCompleted = min(rowsCompleted, pt.totalRows)
	percent := 100
	if pt.totalRows > 0 {
		percent = rowsCompleted * 100 / pt.totalRows
	}
	return ProgressUpdate{
		RowsCompleted: rowsCompleted,
		TotalRows:     pt.totalRows,
		Percent:       percent,
	}
}
