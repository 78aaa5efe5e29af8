package sweep

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Cell is one entry of the result table: the fidelity measured for one
// (angle deviation, noise strength) pair.
type Cell struct {
	AngleDeviation float64
	NoiseStrength  float64
	Fidelity       float64
}

// ResultTable holds the full sweep output. Cells are stored noise-major:
// all deviations for the first noise level (ascending), then all
// deviations for the second, and so on. Consumers rely on this order to
// group curves by noise level and to locate the zero-deviation reference.
type ResultTable struct {
	TargetAngle float64
	Cells       []Cell
}

// Len returns the number of cells in the table.
func (t *ResultTable) Len() int {
	return len(t.Cells)
}

// Series is one noise level's curve: the table cells sharing a noise
// strength, in ascending deviation order.
type Series struct {
	NoiseStrength float64
	Cells         []Cell
}

// Series splits the table into per-noise-level curves, preserving the
// sweep's noise ordering.
func (t *ResultTable) Series() []Series {
	var out []Series
	for _, c := range t.Cells {
		if len(out) == 0 || out[len(out)-1].NoiseStrength != c.NoiseStrength {
			out = append(out, Series{NoiseStrength: c.NoiseStrength})
		}
		last := &out[len(out)-1]
		last.Cells = append(last.Cells, c)
	}
	return out
}

// CellError wraps the error that aborted a sweep together with the grid
// coordinates of the offending cell.
type CellError struct {
	AngleDeviation float64
	NoiseStrength  float64
	Err            error
}

// Error implements the error interface.
func (e *CellError) Error() string {
	return fmt.Sprintf("sweep cell (deviation=%v, noise=%v): %v", e.AngleDeviation, e.NoiseStrength, e.Err)
}

// Unwrap exposes the underlying cause so errors.Is can classify it.
func (e *CellError) Unwrap() error {
	return e.Err
}

// Linspace returns n evenly spaced values from min to max inclusive.
// Used to build the deviation and noise axes for the default experiments.
func Linspace(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, max)
}
