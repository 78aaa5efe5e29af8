package gates

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubitlab/gatecal/internal/quantum"
)

func testModel() *Model {
	return NewModel(zerolog.New(nil).Level(zerolog.Disabled))
}

func TestIdeal(t *testing.T) {
	m := testModel()

	op, err := m.Ideal(RotationSpec{TargetAngle: math.Pi})
	require.NoError(t, err)
	assert.Equal(t, 2, op.Dim())
	assert.True(t, op.IsPure())
}

func TestIdeal_NonFiniteAngle(t *testing.T) {
	m := testModel()

	_, err := m.Ideal(RotationSpec{TargetAngle: math.NaN()})
	require.Error(t, err)
	assert.ErrorIs(t, err, quantum.ErrInvalidParameter)
}

func TestPerturbed_RoundTrip(t *testing.T) {
	// Zero deviation and zero noise must reproduce the ideal gate
	// exactly: fidelity 1, not approximately 1.
	m := testModel()
	spec := RotationSpec{TargetAngle: math.Pi}

	ideal, err := m.Ideal(spec)
	require.NoError(t, err)

	candidate, err := m.Perturbed(spec, PerturbedGateSpec{AngleDeviation: 0, NoiseStrength: 0})
	require.NoError(t, err)

	f, err := quantum.AverageGateFidelity(ideal, candidate)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestPerturbed_AppliesNoise(t *testing.T) {
	m := testModel()
	spec := RotationSpec{TargetAngle: math.Pi}

	op, err := m.Perturbed(spec, PerturbedGateSpec{AngleDeviation: 0.05, NoiseStrength: 0.01})
	require.NoError(t, err)
	assert.Equal(t, 0.01, op.Depolarization())
}

func TestPerturbed_InvalidNoiseStrength(t *testing.T) {
	m := testModel()
	spec := RotationSpec{TargetAngle: math.Pi}

	_, err := m.Perturbed(spec, PerturbedGateSpec{AngleDeviation: 0, NoiseStrength: 1.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, quantum.ErrInvalidParameter)
}

func TestPerturbed_NonFiniteDeviation(t *testing.T) {
	m := testModel()
	spec := RotationSpec{TargetAngle: math.Pi}

	_, err := m.Perturbed(spec, PerturbedGateSpec{AngleDeviation: math.Inf(1), NoiseStrength: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, quantum.ErrInvalidParameter)
}
