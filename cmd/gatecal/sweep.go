package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qubitlab/gatecal/internal/modules/gates"
	"github.com/qubitlab/gatecal/internal/modules/results"
	"github.com/qubitlab/gatecal/internal/modules/sweep"
)

var (
	sweepChart   string
	sweepJSON    string
	sweepMsgpack string
	sweepSave    bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the RX calibration sensitivity sweep",
	Long: `Sweeps the Cartesian grid of angle deviations and depolarizing noise
levels, evaluating average gate fidelity against the ideal RX gate for
every cell, and renders the tolerance surface as one curve per noise
level with a reference marker at zero deviation.`,
	RunE: runSweepCmd,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepChart, "chart", "", "chart output path (default <data-dir>/rx_calibration_sweep.png)")
	sweepCmd.Flags().StringVar(&sweepJSON, "json", "", "also write results as JSON records to this path")
	sweepCmd.Flags().StringVar(&sweepMsgpack, "msgpack", "", "also write results as msgpack records to this path")
	sweepCmd.Flags().BoolVar(&sweepSave, "save", false, "persist the run to the results database")
	rootCmd.AddCommand(sweepCmd)
}

func runSweepCmd(cmd *cobra.Command, args []string) error {
	spec := gates.RotationSpec{TargetAngle: exp.TargetAngle}
	deviations := sweep.Linspace(exp.Deviations.Min, exp.Deviations.Max, exp.Deviations.Points)

	table, err := runSweep(spec, deviations, exp.NoiseLevels)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	chartPath := sweepChart
	if chartPath == "" {
		chartPath = dataPath("rx_calibration_sweep.png")
	}
	if err := chartService().RenderSweep(table, chartPath); err != nil {
		return err
	}
	cmd.Printf("Wrote %s (%d cells)\n", chartPath, table.Len())

	if sweepJSON != "" {
		if err := writeFile(sweepJSON, func(f *os.File) error {
			return results.WriteJSON(f, table)
		}); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", sweepJSON)
	}

	if sweepMsgpack != "" {
		if err := writeFile(sweepMsgpack, func(f *os.File) error {
			return results.WriteMsgpack(f, table)
		}); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", sweepMsgpack)
	}

	if sweepSave {
		id, err := saveRun(table)
		if err != nil {
			return err
		}
		cmd.Printf("Saved run %s\n", id)
	}

	return nil
}

// saveRun persists a table to the results database in the data directory.
func saveRun(table *sweep.ResultTable) (string, error) {
	db, err := results.Open(dataPath("results.db"))
	if err != nil {
		return "", err
	}
	defer db.Close()

	if err := results.Migrate(db); err != nil {
		return "", err
	}

	return results.NewStore(db, log).Save(table)
}

// writeFile creates path and hands the open file to write.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
