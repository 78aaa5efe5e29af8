package results

import (
	"database/sql"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/qubitlab/gatecal/internal/modules/sweep"
)

// setupTestDB creates an in-memory SQLite database with the results schema
func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func testTable() *sweep.ResultTable {
	return &sweep.ResultTable{
		TargetAngle: math.Pi,
		Cells: []sweep.Cell{
			{AngleDeviation: -0.05, NoiseStrength: 0, Fidelity: 0.999},
			{AngleDeviation: 0, NoiseStrength: 0, Fidelity: 1},
			{AngleDeviation: -0.05, NoiseStrength: 0.01, Fidelity: 0.994},
			{AngleDeviation: 0, NoiseStrength: 0.01, Fidelity: 0.995},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, zerolog.New(nil).Level(zerolog.Disabled))

	id, err := store.Save(testTable())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := store.Get(id)
	require.NoError(t, err)

	// The stored run reproduces the table, including its order
	assert.Equal(t, testTable(), loaded)
}

func TestGet_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, zerolog.New(nil).Level(zerolog.Disabled))

	_, err := store.Get("no-such-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestList(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db, zerolog.New(nil).Level(zerolog.Disabled))

	first, err := store.Save(testTable())
	require.NoError(t, err)
	second, err := store.Save(testTable())
	require.NoError(t, err)

	runs, err := store.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	ids := []string{runs[0].ID, runs[1].ID}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
	for _, r := range runs {
		assert.Equal(t, math.Pi, r.TargetAngle)
		assert.Equal(t, 4, r.Cells)
	}
}
