package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		code             TEXT NOT NULL UNIQUE,
		sort_key         TEXT NOT NULL,
		name             TEXT NOT NULL,
		parent_code      TEXT REFERENCES tasks(code) ON DELETE CASCADE,
		order_index      INTEGER NOT NULL DEFAULT 0,
		planned_start    TEXT,
		planned_end      TEXT,
		actual_start     TEXT,
		actual_end       TEXT,
		duration_days    REAL,
		status           TEXT NOT NULL DEFAULT 'not_started'
		                 CHECK(status IN ('not_started','in_progress','done','blocked')),
		percent_complete REAL NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_code)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_sort ON tasks(sort_key)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		predecessor_code TEXT NOT NULL REFERENCES tasks(code) ON DELETE CASCADE,
		successor_code   TEXT NOT NULL REFERENCES tasks(code) ON DELETE CASCADE,
		dependency_type  TEXT NOT NULL DEFAULT 'FS'
		                 CHECK(dependency_type IN ('FS','SS','FF','SF')),
		lag_days         REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (predecessor_code, successor_code)
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id         TEXT PRIMARY KEY,
		task_code  TEXT NOT NULL REFERENCES tasks(code) ON DELETE CASCADE,
		owner      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_task ON assignments(task_code)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_task_owner ON assignments(task_code, owner)`,
}
