package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qubitlab/gatecal/internal/config"
	"github.com/qubitlab/gatecal/internal/modules/charts"
	"github.com/qubitlab/gatecal/internal/modules/fidelity"
	"github.com/qubitlab/gatecal/internal/modules/gates"
	"github.com/qubitlab/gatecal/internal/modules/sweep"
	"github.com/qubitlab/gatecal/pkg/logger"
)

var (
	flagExperiment string
	flagLogLevel   string

	cfg *config.Config
	exp config.Experiment
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gatecal",
	Short: "Single-qubit gate calibration tolerance studies",
	Long: `gatecal numerically studies how small calibration errors in an RX
rotation gate, combined with depolarizing noise, degrade average gate
fidelity relative to the ideal operation.

All experiments run from in-code defaults; an optional TOML experiment
file and flags override them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagExperiment, "experiment", "", "TOML experiment file overriding the defaults")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration, initializes logging and resolves the
// experiment parameters before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log = logger.New(logger.Config{Level: level, Pretty: true})
	logger.SetGlobalLogger(log)

	exp = config.DefaultExperiment()
	if flagExperiment != "" {
		exp, err = config.LoadExperiment(flagExperiment)
		if err != nil {
			return err
		}
		log.Info().Str("path", flagExperiment).Msg("Loaded experiment file")
	}

	return nil
}

// runSweep wires a fresh engine (engines are single-use) and executes one
// grid. Shared by all subcommands.
func runSweep(spec gates.RotationSpec, deviations, noiseLevels []float64) (*sweep.ResultTable, error) {
	model := gates.NewModel(log)
	eval := fidelity.NewEvaluator(log)
	engine := sweep.NewEngine(model, eval, log)

	return engine.Run(spec, deviations, noiseLevels)
}

// chartService returns the shared chart renderer.
func chartService() *charts.Service {
	return charts.NewService(log)
}

// dataPath resolves a file name inside the configured data directory.
func dataPath(name string) string {
	return filepath.Join(cfg.DataDir, name)
}
