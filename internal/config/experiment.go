package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Axis describes a linearly spaced sweep axis in a TOML experiment file.
type Axis struct {
	Min    float64 `toml:"min"`
	Max    float64 `toml:"max"`
	Points int     `toml:"points"`
}

// Experiment holds the parameters of one calibration study. Values not
// present in the file keep their defaults.
type Experiment struct {
	TargetAngle float64   `toml:"target_angle"`
	Deviations  Axis      `toml:"deviations"`
	NoiseLevels []float64 `toml:"noise_levels"`
	Threshold   float64   `toml:"threshold"`
}

// DefaultExperiment returns the default calibration study: a full X flip
// swept over ±0.1 rad of deviation at four depolarizing noise levels.
func DefaultExperiment() Experiment {
	return Experiment{
		TargetAngle: math.Pi,
		Deviations:  Axis{Min: -0.1, Max: 0.1, Points: 41},
		NoiseLevels: []float64{0.0, 0.005, 0.01, 0.02},
		Threshold:   0.99,
	}
}

// LoadExperiment reads a TOML experiment file over the defaults.
func LoadExperiment(path string) (Experiment, error) {
	exp := DefaultExperiment()

	data, err := os.ReadFile(path)
	if err != nil {
		return exp, fmt.Errorf("failed to read experiment file: %w", err)
	}

	if err := toml.Unmarshal(data, &exp); err != nil {
		return exp, fmt.Errorf("failed to parse experiment file: %w", err)
	}

	if exp.Deviations.Points < 1 {
		return exp, fmt.Errorf("experiment file: deviations.points must be at least 1, got %d", exp.Deviations.Points)
	}

	return exp, nil
}
