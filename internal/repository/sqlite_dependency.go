package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rvannest/joist/internal/db"
	"github.com/rvannest/joist/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo against a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(dbtx db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: dbtx}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO dependencies (predecessor_code, successor_code, dependency_type, lag_days)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.PredecessorCode, d.SuccessorCode, string(d.Type), d.LagDays)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorCode, successorCode string) error {
	query := `DELETE FROM dependencies WHERE predecessor_code = ? AND successor_code = ?`
	_, err := r.db.ExecContext(ctx, query, predecessorCode, successorCode)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

const dependencyColumns = `predecessor_code, successor_code, dependency_type, lag_days`

func (r *SQLiteDependencyRepo) ListByPredecessor(ctx context.Context, code string) ([]domain.Dependency, error) {
	query := `SELECT ` + dependencyColumns + ` FROM dependencies WHERE predecessor_code = ?`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing successors: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListBySuccessor(ctx context.Context, code string) ([]domain.Dependency, error) {
	query := `SELECT ` + dependencyColumns + ` FROM dependencies WHERE successor_code = ?`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing predecessors: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListAll(ctx context.Context) ([]domain.Dependency, error) {
	query := `SELECT ` + dependencyColumns + ` FROM dependencies ORDER BY predecessor_code, successor_code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

// scanDependencies scans multiple dependency rows from *sql.Rows.
func (r *SQLiteDependencyRepo) scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		var typeStr string
		if err := rows.Scan(&d.PredecessorCode, &d.SuccessorCode, &typeStr, &d.LagDays); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		d.Type = domain.DependencyType(typeStr)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
