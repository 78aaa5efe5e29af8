package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qubitlab/gatecal/internal/modules/gates"
	"github.com/qubitlab/gatecal/internal/modules/sweep"
	"github.com/qubitlab/gatecal/internal/modules/tolerance"
)

var (
	windowChart     string
	windowThreshold float64
	windowSpan      float64
	windowPoints    int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Compute calibration tolerance windows",
	Long: `Computes, for each noise level, the allowable angle-deviation range
over which the average gate fidelity stays above a target threshold.`,
	RunE: runWindowCmd,
}

func init() {
	windowCmd.Flags().StringVar(&windowChart, "chart", "", "chart output path (default <data-dir>/calibration_tolerance_window.png)")
	windowCmd.Flags().Float64Var(&windowThreshold, "threshold", 0, "fidelity threshold (default from experiment, 0.99)")
	windowCmd.Flags().Float64Var(&windowSpan, "span", 0.15, "deviation half-range in radians")
	windowCmd.Flags().IntVar(&windowPoints, "points", 601, "number of deviation points")
	rootCmd.AddCommand(windowCmd)
}

func runWindowCmd(cmd *cobra.Command, args []string) error {
	spec := gates.RotationSpec{TargetAngle: exp.TargetAngle}
	deviations := sweep.Linspace(-windowSpan, windowSpan, windowPoints)

	table, err := runSweep(spec, deviations, exp.NoiseLevels)
	if err != nil {
		return fmt.Errorf("tolerance study failed: %w", err)
	}

	threshold := windowThreshold
	if threshold == 0 {
		threshold = exp.Threshold
	}

	windows, err := tolerance.NewService(log).Windows(table, threshold)
	if err != nil {
		return err
	}

	cmd.Printf("Tolerance windows at fidelity >= %g:\n", threshold)
	for _, w := range windows {
		cmd.Printf("  p = %-6g  width = %.4f rad\n", w.NoiseStrength, w.Width)
	}

	chartPath := windowChart
	if chartPath == "" {
		chartPath = dataPath("calibration_tolerance_window.png")
	}
	if err := chartService().RenderWindows(windows, chartPath); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", chartPath)

	return nil
}
