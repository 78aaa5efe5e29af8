package results

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/qubitlab/gatecal/internal/modules/sweep"
)

// Record is the machine-readable form of one sweep cell.
type Record struct {
	AngleDeviation float64 `json:"angle_deviation" msgpack:"angle_deviation"`
	NoiseStrength  float64 `json:"noise_strength" msgpack:"noise_strength"`
	Fidelity       float64 `json:"fidelity" msgpack:"fidelity"`
}

// Records flattens a result table into records, preserving table order.
func Records(table *sweep.ResultTable) []Record {
	out := make([]Record, len(table.Cells))
	for i, c := range table.Cells {
		out[i] = Record{
			AngleDeviation: c.AngleDeviation,
			NoiseStrength:  c.NoiseStrength,
			Fidelity:       c.Fidelity,
		}
	}
	return out
}

// WriteJSON writes the table as an indented JSON array of records.
func WriteJSON(w io.Writer, table *sweep.ResultTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Records(table)); err != nil {
		return fmt.Errorf("failed to encode results as JSON: %w", err)
	}
	return nil
}

// WriteMsgpack writes the table as a msgpack-encoded array of records.
func WriteMsgpack(w io.Writer, table *sweep.ResultTable) error {
	if err := msgpack.NewEncoder(w).Encode(Records(table)); err != nil {
		return fmt.Errorf("failed to encode results as msgpack: %w", err)
	}
	return nil
}
