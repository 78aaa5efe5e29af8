// Package gates provides the gate model: construction of the ideal RX
// rotation and of its perturbed, noise-degraded counterpart.
package gates

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qubitlab/gatecal/internal/quantum"
)

// RotationSpec defines the ideal gate for one experiment run.
type RotationSpec struct {
	TargetAngle float64 // radians
}

// PerturbedGateSpec describes one grid cell of the calibration study:
// an angle deviation from the target (by convention within ±0.1 rad)
// and a depolarizing noise strength in [0, 1].
type PerturbedGateSpec struct {
	AngleDeviation float64 // radians
	NoiseStrength  float64 // depolarizing probability
}

// Model builds ideal and perturbed gate operators.
type Model struct {
	log zerolog.Logger
}

// NewModel creates a new gate model
func NewModel(log zerolog.Logger) *Model {
	return &Model{
		log: log.With().Str("service", "gates").Logger(),
	}
}

// Ideal returns the pure RX unitary for the target angle. Deterministic
// for any finite angle; non-finite angles fail with ErrInvalidParameter.
func (m *Model) Ideal(spec RotationSpec) (quantum.Operator, error) {
	op, err := quantum.RX(spec.TargetAngle)
	if err != nil {
		return quantum.Operator{}, fmt.Errorf("ideal gate: %w", err)
	}
	return op, nil
}

// Perturbed returns the operator for target angle + deviation with a
// depolarizing degradation of the given strength applied on top.
//
// Contract: NoiseStrength = 0 and AngleDeviation = 0 reproduce the ideal
// gate exactly (fidelity 1 against Ideal). NoiseStrength outside [0, 1]
// and non-finite inputs fail with ErrInvalidParameter.
func (m *Model) Perturbed(spec RotationSpec, cell PerturbedGateSpec) (quantum.Operator, error) {
	op, err := quantum.RX(spec.TargetAngle + cell.AngleDeviation)
	if err != nil {
		return quantum.Operator{}, fmt.Errorf("perturbed gate at deviation %v: %w", cell.AngleDeviation, err)
	}

	noisy, err := op.Depolarize(cell.NoiseStrength)
	if err != nil {
		return quantum.Operator{}, fmt.Errorf("perturbed gate at deviation %v: %w", cell.AngleDeviation, err)
	}

	return noisy, nil
}
