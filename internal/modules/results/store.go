// Package results persists completed sweeps and exports them in the
// machine-readable record format {angle_deviation, noise_strength,
// fidelity}. Persistence is an optional step after a sweep; the numerical
// core never touches storage.
package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/qubitlab/gatecal/internal/modules/sweep"
)

// RunSummary describes one stored sweep run.
type RunSummary struct {
	ID          string
	TargetAngle float64
	Cells       int
	CreatedAt   time.Time
}

// Store handles CRUD operations for sweep runs
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewStore creates a new results store
func NewStore(db *sql.DB, log zerolog.Logger) *Store {
	return &Store{
		db:  db,
		log: log.With().Str("repository", "results").Logger(),
	}
}

// Save stores a completed result table and returns the new run ID.
// Cell positions record the table order so Get reproduces it exactly.
func (s *Store) Save(table *sweep.ResultTable) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO sweep_runs (id, target_angle, created_at) VALUES (?, ?, ?)`,
		id, table.TargetAngle, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert sweep run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sweep_cells (run_id, position, angle_deviation, noise_strength, fidelity)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("failed to prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range table.Cells {
		if _, err := stmt.Exec(id, i, c.AngleDeviation, c.NoiseStrength, c.Fidelity); err != nil {
			return "", fmt.Errorf("failed to insert cell %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit sweep run: %w", err)
	}

	s.log.Info().Str("run_id", id).Int("cells", table.Len()).Msg("Saved sweep run")
	return id, nil
}

// Get loads a stored run as a result table, in the original table order.
func (s *Store) Get(id string) (*sweep.ResultTable, error) {
	table := &sweep.ResultTable{}

	err := s.db.QueryRow(`SELECT target_angle FROM sweep_runs WHERE id = ?`, id).
		Scan(&table.TargetAngle)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sweep run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sweep run: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT angle_deviation, noise_strength, fidelity
		 FROM sweep_cells WHERE run_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load sweep cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c sweep.Cell
		if err := rows.Scan(&c.AngleDeviation, &c.NoiseStrength, &c.Fidelity); err != nil {
			return nil, fmt.Errorf("failed to scan sweep cell: %w", err)
		}
		table.Cells = append(table.Cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sweep cells: %w", err)
	}

	return table, nil
}

// List returns summaries of all stored runs, newest first.
func (s *Store) List() ([]RunSummary, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.target_angle, r.created_at, COUNT(c.run_id)
		FROM sweep_runs r
		LEFT JOIN sweep_cells c ON c.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sweep runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var sum RunSummary
		var createdAt int64
		if err := rows.Scan(&sum.ID, &sum.TargetAngle, &createdAt, &sum.Cells); err != nil {
			return nil, fmt.Errorf("failed to scan sweep run: %w", err)
		}
		sum.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sweep runs: %w", err)
	}

	return out, nil
}
