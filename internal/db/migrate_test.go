package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"tasks", "dependencies", "assignments"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running all migrations against an up-to-date schema must not error.
	assert.NoError(t, Migrate(database))
}

func TestMigrate_EnforcesDependencyPair(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO tasks (id, code, sort_key, name, created_at, updated_at)
		VALUES ('a', '1', '0001', 'A', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z'),
		       ('b', '2', '0002', 'B', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO dependencies (predecessor_code, successor_code) VALUES ('1', '2')`)
	require.NoError(t, err)

	// Second edge for the same ordered pair violates the primary key.
	_, err = database.Exec(`INSERT INTO dependencies (predecessor_code, successor_code) VALUES ('1', '2')`)
	assert.Error(t, err)

	// The reverse direction is an independent statement and is allowed.
	_, err = database.Exec(`INSERT INTO dependencies (predecessor_code, successor_code) VALUES ('2', '1')`)
	assert.NoError(t, err)
}
