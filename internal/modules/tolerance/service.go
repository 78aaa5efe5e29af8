// Package tolerance computes calibration tolerance windows: for each noise
// level of a completed sweep, the width of the angle-deviation range over
// which the gate still meets a fidelity threshold.
package tolerance

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qubitlab/gatecal/internal/modules/sweep"
	"github.com/qubitlab/gatecal/internal/quantum"
)

// DefaultThreshold is the fidelity floor used when none is configured.
const DefaultThreshold = 0.99

// Window is the tolerance result for one noise level: the width
// (max minus min deviation) of the region where fidelity stays at or
// above the threshold. Width is 0 when no cell qualifies.
type Window struct {
	NoiseStrength float64
	Width         float64
}

// Service computes tolerance windows from sweep result tables.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new tolerance service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "tolerance").Logger(),
	}
}

// Windows returns one Window per noise level of the table, in the table's
// noise order. The threshold must lie in (0, 1]; anything else fails with
// ErrInvalidParameter.
func (s *Service) Windows(table *sweep.ResultTable, threshold float64) ([]Window, error) {
	if !(threshold > 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: fidelity threshold must be in (0,1], got %v",
			quantum.ErrInvalidParameter, threshold)
	}

	series := table.Series()
	windows := make([]Window, 0, len(series))

	for _, ser := range series {
		w := Window{NoiseStrength: ser.NoiseStrength}

		// Deviations are ascending within a series, so the window is
		// bounded by the first and last qualifying cells.
		first, last := -1, -1
		for i, c := range ser.Cells {
			if c.Fidelity >= threshold {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first >= 0 {
			w.Width = ser.Cells[last].AngleDeviation - ser.Cells[first].AngleDeviation
		}

		s.log.Debug().
			Float64("noise_strength", w.NoiseStrength).
			Float64("width", w.Width).
			Msg("Computed tolerance window")

		windows = append(windows, w)
	}

	return windows, nil
}
