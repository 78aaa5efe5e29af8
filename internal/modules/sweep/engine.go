// Package sweep provides the sweep engine: it iterates the Cartesian grid
// of angle deviations and noise levels, scores every cell through the gate
// model and the fidelity evaluator, and assembles the result table the
// presentation and analysis layers consume.
package sweep

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qubitlab/gatecal/internal/modules/gates"
	"github.com/qubitlab/gatecal/internal/quantum"
)

// GateModel is the slice of the gate model the engine needs.
type GateModel interface {
	Ideal(spec gates.RotationSpec) (quantum.Operator, error)
	Perturbed(spec gates.RotationSpec, cell gates.PerturbedGateSpec) (quantum.Operator, error)
}

// FidelityEvaluator is the slice of the fidelity evaluator the engine needs.
type FidelityEvaluator interface {
	AverageGateFidelity(ideal, candidate quantum.Operator) (float64, error)
}

// State is the engine lifecycle state. The machine is linear:
// Configured -> Running -> Completed, or Failed on the first cell error.
type State int

const (
	StateConfigured State = iota
	StateRunning
	StateCompleted
	StateFailed
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Engine runs one calibration sweep. An engine is single-use: Run may be
// called exactly once, matching the grid axes being fixed for the lifetime
// of one sweep.
type Engine struct {
	model GateModel
	eval  FidelityEvaluator
	state State
	log   zerolog.Logger
}

// NewEngine creates a new sweep engine
func NewEngine(model GateModel, eval FidelityEvaluator, log zerolog.Logger) *Engine {
	return &Engine{
		model: model,
		eval:  eval,
		state: StateConfigured,
		log:   log.With().Str("service", "sweep").Logger(),
	}
}

// State returns the current lifecycle state of the engine.
func (e *Engine) State() State {
	return e.state
}

// Run executes the full sweep grid and returns the assembled result table.
//
// Iteration order is noise-major: the outer loop walks the noise levels in
// the given order so each level forms one contiguous curve, and the inner
// loop walks the angle deviations, which must be strictly ascending so the
// curve is continuous and the zero-deviation reference point is locatable.
// Every (deviation, noise) pair maps to exactly one cell; cells are
// computed fresh with no memoization.
//
// The sweep is fail-fast: the first cell error aborts the run, moves the
// engine to StateFailed, and is returned wrapped in a CellError carrying
// the offending grid coordinates. Partial results are discarded.
func (e *Engine) Run(spec gates.RotationSpec, deviations, noiseLevels []float64) (*ResultTable, error) {
	if e.state != StateConfigured {
		return nil, fmt.Errorf("sweep engine already ran (state %s)", e.state)
	}
	if err := validateAxes(deviations, noiseLevels); err != nil {
		e.state = StateFailed
		return nil, err
	}

	e.state = StateRunning
	e.log.Info().
		Float64("target_angle", spec.TargetAngle).
		Int("deviations", len(deviations)).
		Int("noise_levels", len(noiseLevels)).
		Msg("Starting calibration sweep")

	ideal, err := e.model.Ideal(spec)
	if err != nil {
		e.state = StateFailed
		return nil, fmt.Errorf("sweep setup: %w", err)
	}

	table := &ResultTable{
		TargetAngle: spec.TargetAngle,
		Cells:       make([]Cell, 0, len(deviations)*len(noiseLevels)),
	}

	for _, p := range noiseLevels {
		for _, delta := range deviations {
			f, err := e.runCell(spec, ideal, delta, p)
			if err != nil {
				e.state = StateFailed
				e.log.Error().Err(err).
					Float64("angle_deviation", delta).
					Float64("noise_strength", p).
					Msg("Sweep cell failed, aborting")
				return nil, &CellError{AngleDeviation: delta, NoiseStrength: p, Err: err}
			}

			table.Cells = append(table.Cells, Cell{
				AngleDeviation: delta,
				NoiseStrength:  p,
				Fidelity:       f,
			})
		}
	}

	e.state = StateCompleted
	e.log.Info().Int("cells", table.Len()).Msg("Calibration sweep completed")

	return table, nil
}

// runCell computes the fidelity for a single grid cell. Pure function of
// its inputs; no state is shared between cells.
func (e *Engine) runCell(spec gates.RotationSpec, ideal quantum.Operator, delta, p float64) (float64, error) {
	candidate, err := e.model.Perturbed(spec, gates.PerturbedGateSpec{
		AngleDeviation: delta,
		NoiseStrength:  p,
	})
	if err != nil {
		return 0, err
	}

	return e.eval.AverageGateFidelity(ideal, candidate)
}

func validateAxes(deviations, noiseLevels []float64) error {
	if len(deviations) == 0 {
		return fmt.Errorf("%w: sweep needs at least one angle deviation", quantum.ErrInvalidParameter)
	}
	if len(noiseLevels) == 0 {
		return fmt.Errorf("%w: sweep needs at least one noise level", quantum.ErrInvalidParameter)
	}
	for i := 1; i < len(deviations); i++ {
		if deviations[i] <= deviations[i-1] {
			return fmt.Errorf("%w: angle deviations must be strictly ascending (index %d)",
				quantum.ErrInvalidParameter, i)
		}
	}
	return nil
}
