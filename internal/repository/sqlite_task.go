package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/db"
	"github.com/rvannest/joist/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, code, name, parent_code, order_index,
		planned_start, planned_end, actual_start, actual_end,
		duration_days, status, percent_complete, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo against a SQLite database. It accepts a
// db.DBTX so the same repository runs inside or outside a transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, code, sort_key, name, parent_code, order_index,
		planned_start, planned_end, actual_start, actual_end,
		duration_days, status, percent_complete, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Code,
		domain.CodeSortKey(t.Code),
		t.Name,
		t.ParentCode, // *string: nil becomes SQL NULL
		t.OrderIndex,
		nullableTimeToString(t.PlannedStart, dateLayout),
		nullableTimeToString(t.PlannedEnd, dateLayout),
		nullableTimeToString(t.ActualStart, dateLayout),
		nullableTimeToString(t.ActualEnd, dateLayout),
		nullableFloatToValue(t.DurationDays),
		string(t.Status),
		t.PercentComplete,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByCode(ctx context.Context, code string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE code = ?`
	row := r.db.QueryRowContext(ctx, query, code)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) ListAll(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY sort_key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListRoots(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE parent_code IS NULL ORDER BY sort_key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing root tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListChildren(ctx context.Context, parentCode string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE parent_code = ? ORDER BY sort_key`
	rows, err := r.db.QueryContext(ctx, query, parentCode)
	if err != nil {
		return nil, fmt.Errorf("listing child tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// ListAncestors walks parent links from the given code upward, nearest-first.
func (r *SQLiteTaskRepo) ListAncestors(ctx context.Context, code string) ([]*domain.Task, error) {
	task, err := r.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var ancestors []*domain.Task
	for task.ParentCode != nil {
		parent, err := r.GetByCode(ctx, *task.ParentCode)
		if err != nil {
			return nil, fmt.Errorf("walking ancestors of %s: %w", code, err)
		}
		ancestors = append(ancestors, parent)
		task = parent
	}
	return ancestors, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET code = ?, sort_key = ?, name = ?, parent_code = ?, order_index = ?,
		planned_start = ?, planned_end = ?, actual_start = ?, actual_end = ?,
		duration_days = ?, status = ?, percent_complete = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Code,
		domain.CodeSortKey(t.Code),
		t.Name,
		t.ParentCode,
		t.OrderIndex,
		nullableTimeToString(t.PlannedStart, dateLayout),
		nullableTimeToString(t.PlannedEnd, dateLayout),
		nullableTimeToString(t.ActualStart, dateLayout),
		nullableTimeToString(t.ActualEnd, dateLayout),
		nullableFloatToValue(t.DurationDays),
		string(t.Status),
		t.PercentComplete,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, code string) error {
	query := `DELETE FROM tasks WHERE code = ?`
	if _, err := r.db.ExecContext(ctx, query, code); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var statusStr, createdAtStr, updatedAtStr string
	var parentCode sql.NullString
	var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
	var durationDays sql.NullFloat64

	err := row.Scan(
		&t.ID, &t.Code, &t.Name, &parentCode, &t.OrderIndex,
		&plannedStart, &plannedEnd, &actualStart, &actualEnd,
		&durationDays, &statusStr, &t.PercentComplete,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, statusStr, createdAtStr, updatedAtStr, parentCode,
		plannedStart, plannedEnd, actualStart, actualEnd, durationDays)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var statusStr, createdAtStr, updatedAtStr string
		var parentCode sql.NullString
		var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
		var durationDays sql.NullFloat64

		err := rows.Scan(
			&t.ID, &t.Code, &t.Name, &parentCode, &t.OrderIndex,
			&plannedStart, &plannedEnd, &actualStart, &actualEnd,
			&durationDays, &statusStr, &t.PercentComplete,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, statusStr, createdAtStr, updatedAtStr, parentCode,
			plannedStart, plannedEnd, actualStart, actualEnd, durationDays)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw strings.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	statusStr, createdAtStr, updatedAtStr string,
	parentCode sql.NullString,
	plannedStart, plannedEnd, actualStart, actualEnd sql.NullString,
	durationDays sql.NullFloat64,
) (*domain.Task, error) {
	t.Status = domain.TaskStatus(statusStr)

	if parentCode.Valid {
		t.ParentCode = &parentCode.String
	}

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	t.PlannedStart = parseNullableTime(plannedStart, dateLayout)
	t.PlannedEnd = parseNullableTime(plannedEnd, dateLayout)
	t.ActualStart = parseNullableTime(actualStart, dateLayout)
	t.ActualEnd = parseNullableTime(actualEnd, dateLayout)

	if durationDays.Valid {
		v := durationDays.Float64
		t.DurationDays = &v
	}

	return t, nil
}
