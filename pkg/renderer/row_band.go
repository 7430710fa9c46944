package renderer

// RowBand is a contiguous range of image rows rendered by a single worker
type RowBand struct {
	ID       int // Worker index
	StartRow int // First row, inclusive
	EndRow   int // Last row, exclusive
}

// Rows returns the number of rows in the band
func (b RowBand) Rows() int {
	return b.EndRow - b.StartRow
}

// NewRowBands splits height rows into contiguous bands, one per worker.
// Each band gets height/workers rows and the last band also takes the remainder.
// There are never more bands than rows.
func NewRowBands(height, workers int) []RowBand {
	if height <= 0 {
		return nil
	}
	workers = max(min(workers, height), 1)

	rowsPerBand := height / workers
	bands := make([]RowBand, workers)
	for i := range bands {
		start := i * rowsPerBand
		end := start + rowsPerBand
		if i == workers-1 {
			end = height
		}
		bands[i] = RowBand{ID: i, StartRow: start, EndRow: end}
	}
	return bands
}
