package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/db"
	"github.com/rvannest/joist/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo against a SQLite database.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(dbtx db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: dbtx}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (id, task_code, owner, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.TaskCode, a.Owner, a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, taskCode, owner string) error {
	query := `DELETE FROM assignments WHERE task_code = ? AND owner = ?`
	if _, err := r.db.ExecContext(ctx, query, taskCode, owner); err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListByTask(ctx context.Context, taskCode string) ([]domain.Assignment, error) {
	query := `SELECT id, task_code, owner, created_at FROM assignments WHERE task_code = ? ORDER BY owner`
	rows, err := r.db.QueryContext(ctx, query, taskCode)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()
	return r.scanAssignments(rows)
}

// OwnersByTask returns the distinct owner names per task code for the whole
// tree, the shape resource allocation consumes.
func (r *SQLiteAssignmentRepo) OwnersByTask(ctx context.Context) (map[string][]string, error) {
	query := `SELECT DISTINCT task_code, owner FROM assignments ORDER BY task_code, owner`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()

	owners := make(map[string][]string)
	for rows.Next() {
		var code, owner string
		if err := rows.Scan(&code, &owner); err != nil {
			return nil, fmt.Errorf("scanning owner row: %w", err)
		}
		owners[code] = append(owners[code], owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating owners: %w", err)
	}
	return owners, nil
}

func (r *SQLiteAssignmentRepo) scanAssignments(rows *sql.Rows) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var createdAtStr string
		if err := rows.Scan(&a.ID, &a.TaskCode, &a.Owner, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		created, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		a.CreatedAt = created
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}
