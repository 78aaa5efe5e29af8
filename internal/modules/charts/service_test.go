package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubitlab/gatecal/internal/modules/sweep"
	"github.com/qubitlab/gatecal/internal/modules/tolerance"
)

func testService() *Service {
	return NewService(zerolog.New(nil).Level(zerolog.Disabled))
}

func testTable() *sweep.ResultTable {
	return &sweep.ResultTable{
		TargetAngle: 3.14,
		Cells: []sweep.Cell{
			{AngleDeviation: -0.1, NoiseStrength: 0, Fidelity: 0.997},
			{AngleDeviation: 0, NoiseStrength: 0, Fidelity: 1},
			{AngleDeviation: 0.1, NoiseStrength: 0, Fidelity: 0.997},
			{AngleDeviation: -0.1, NoiseStrength: 0.01, Fidelity: 0.992},
			{AngleDeviation: 0, NoiseStrength: 0.01, Fidelity: 0.995},
			{AngleDeviation: 0.1, NoiseStrength: 0.01, Fidelity: 0.992},
		},
	}
}

func TestRenderSweep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.png")

	require.NoError(t, testService().RenderSweep(testTable(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderSweep_EmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.png")

	err := testService().RenderSweep(&sweep.ResultTable{}, path)
	require.Error(t, err)
}

func TestRenderNoiseCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.png")

	table := &sweep.ResultTable{
		Cells: []sweep.Cell{
			{AngleDeviation: 0, NoiseStrength: 0, Fidelity: 1},
			{AngleDeviation: 0, NoiseStrength: 0.01, Fidelity: 0.995},
			{AngleDeviation: 0, NoiseStrength: 0.02, Fidelity: 0.99},
		},
	}
	require.NoError(t, testService().RenderNoiseCurve(table, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.png")

	windows := []tolerance.Window{
		{NoiseStrength: 0, Width: 0.2},
		{NoiseStrength: 0.01, Width: 0.15},
		{NoiseStrength: 0.02, Width: 0.1},
	}
	require.NoError(t, testService().RenderWindows(windows, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderWindows_Empty(t *testing.T) {
	err := testService().RenderWindows(nil, filepath.Join(t.TempDir(), "w.png"))
	require.Error(t, err)
}
