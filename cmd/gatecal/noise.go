package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qubitlab/gatecal/internal/modules/gates"
	"github.com/qubitlab/gatecal/internal/modules/sweep"
)

var (
	noiseChart  string
	noiseMax    float64
	noisePoints int
)

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Run the fidelity-vs-noise study at perfect calibration",
	Long: `Holds the angle deviation at zero and sweeps the depolarizing noise
strength alone, showing how noise by itself limits the achievable
gate fidelity when calibration is ideal.`,
	RunE: runNoiseCmd,
}

func init() {
	noiseCmd.Flags().StringVar(&noiseChart, "chart", "", "chart output path (default <data-dir>/fidelity_vs_noise.png)")
	noiseCmd.Flags().Float64Var(&noiseMax, "max", 0.03, "maximum noise strength")
	noiseCmd.Flags().IntVar(&noisePoints, "points", 25, "number of noise levels")
	rootCmd.AddCommand(noiseCmd)
}

func runNoiseCmd(cmd *cobra.Command, args []string) error {
	spec := gates.RotationSpec{TargetAngle: exp.TargetAngle}
	noiseLevels := sweep.Linspace(0, noiseMax, noisePoints)

	table, err := runSweep(spec, []float64{0}, noiseLevels)
	if err != nil {
		return fmt.Errorf("noise study failed: %w", err)
	}

	chartPath := noiseChart
	if chartPath == "" {
		chartPath = dataPath("fidelity_vs_noise.png")
	}
	if err := chartService().RenderNoiseCurve(table, chartPath); err != nil {
		return err
	}
	cmd.Printf("Wrote %s (%d noise levels)\n", chartPath, len(noiseLevels))

	return nil
}
