package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRX(t *testing.T, theta float64) Operator {
	t.Helper()
	op, err := RX(theta)
	require.NoError(t, err)
	return op
}

func TestAverageGateFidelity_Identity(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, math.Pi, 2.7, -1.1} {
		op := mustRX(t, theta)
		f, err := AverageGateFidelity(op, op)
		require.NoError(t, err, "theta=%v", theta)
		assert.InDelta(t, 1, f, 1e-12, "theta=%v", theta)
	}

	// The full X flip is the reference case and must be exact.
	op := mustRX(t, math.Pi)
	f, err := AverageGateFidelity(op, op)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestAverageGateFidelity_DeviationDegrades(t *testing.T) {
	ideal := mustRX(t, math.Pi)

	for _, delta := range []float64{-0.1, -0.01, 0.01, 0.05, 0.1} {
		f, err := AverageGateFidelity(ideal, mustRX(t, math.Pi+delta))
		require.NoError(t, err)
		assert.Less(t, f, 1.0, "delta=%v", delta)
		assert.GreaterOrEqual(t, f, 0.0, "delta=%v", delta)
	}
}

func TestAverageGateFidelity_ClosedForm(t *testing.T) {
	// For pure RX unitaries F = (2·cos²(δ/2) + 1)/3.
	ideal := mustRX(t, math.Pi/2)
	delta := 0.08

	f, err := AverageGateFidelity(ideal, mustRX(t, math.Pi/2+delta))
	require.NoError(t, err)

	want := (2*math.Pow(math.Cos(delta/2), 2) + 1) / 3
	assert.InDelta(t, want, f, 1e-12)
}

func TestAverageGateFidelity_NoiseMonotonicity(t *testing.T) {
	ideal := mustRX(t, math.Pi)
	deviated := mustRX(t, math.Pi+0.05)

	prev := math.Inf(1)
	for _, p := range []float64{0.0, 0.005, 0.01, 0.02} {
		noisy, err := deviated.Depolarize(p)
		require.NoError(t, err)

		f, err := AverageGateFidelity(ideal, noisy)
		require.NoError(t, err)
		assert.LessOrEqual(t, f, prev, "p=%v", p)
		prev = f
	}
}

func TestAverageGateFidelity_FullDepolarization(t *testing.T) {
	// p = 1 destroys all information: fidelity is 1/d = 1/2 for a
	// single qubit, regardless of the angle deviation.
	ideal := mustRX(t, math.Pi)

	for _, delta := range []float64{-0.1, 0, 0.07} {
		noisy, err := mustRX(t, math.Pi+delta).Depolarize(1)
		require.NoError(t, err)

		f, err := AverageGateFidelity(ideal, noisy)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, f, 1e-12, "delta=%v", delta)
	}
}

func TestAverageGateFidelity_DimensionMismatch(t *testing.T) {
	ideal, err := Identity(4)
	require.NoError(t, err)

	_, err = AverageGateFidelity(ideal, mustRX(t, math.Pi))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAverageGateFidelity_IdealMustBePure(t *testing.T) {
	noisy, err := mustRX(t, math.Pi).Depolarize(0.1)
	require.NoError(t, err)

	_, err = AverageGateFidelity(noisy, mustRX(t, math.Pi))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
