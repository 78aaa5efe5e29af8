// Package fidelity provides the average-gate-fidelity evaluator used to
// score candidate gates against the ideal operation.
package fidelity

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qubitlab/gatecal/internal/quantum"
)

// Evaluator computes average gate fidelity between an ideal operator and
// a candidate operator. The comparison direction is fixed (ideal first,
// candidate second); the metric is not symmetric.
type Evaluator struct {
	log zerolog.Logger
}

// NewEvaluator creates a new fidelity evaluator
func NewEvaluator(log zerolog.Logger) *Evaluator {
	return &Evaluator{
		log: log.With().Str("service", "fidelity").Logger(),
	}
}

// AverageGateFidelity returns the average gate fidelity of candidate
// against ideal, always in [0, 1].
//
// Failure modes are never recovered locally: mismatched operator
// dimensions fail with ErrDimensionMismatch, and a result outside [0, 1]
// beyond numerical tolerance fails with ErrComputation rather than being
// clamped.
func (e *Evaluator) AverageGateFidelity(ideal, candidate quantum.Operator) (float64, error) {
	f, err := quantum.AverageGateFidelity(ideal, candidate)
	if err != nil {
		return 0, fmt.Errorf("average gate fidelity: %w", err)
	}

	e.log.Debug().
		Float64("fidelity", f).
		Float64("candidate_depolarization", candidate.Depolarization()).
		Msg("Evaluated average gate fidelity")

	return f, nil
}
