package service

import (
	"context"
	"time"

	"github.com/rvannest/joist/internal/contract"
	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/importer"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByCode(ctx context.Context, code string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListRoots(ctx context.Context) ([]*domain.Task, error)
	ListChildren(ctx context.Context, parentCode string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, code string) error
}

type DependencyService interface {
	Add(ctx context.Context, d *domain.Dependency) error
	Remove(ctx context.Context, predecessorCode, successorCode string) error
	List(ctx context.Context) ([]domain.Dependency, error)
}

type AssignmentService interface {
	Assign(ctx context.Context, taskCode, owner string) error
	Unassign(ctx context.Context, taskCode, owner string) error
	ListByTask(ctx context.Context, taskCode string) ([]domain.Assignment, error)
}

// ScheduleService runs the scheduling computations over the stored plan.
// Mutating operations (rollups, optimize, shift, set-dates) persist every
// touched task inside one transaction.
type ScheduleService interface {
	RollupAll(ctx context.Context) (bool, error)
	Rollup(ctx context.Context, code string) (bool, error)
	CriticalPath(ctx context.Context) (*contract.CriticalPathResult, error)
	ResourceCalendar(ctx context.Context, from, to time.Time) (*contract.ResourceCalendar, error)
	Conflicts(ctx context.Context, threshold int) (*contract.ConflictReport, error)
	Optimize(ctx context.Context) (*contract.OptimizeResult, error)
	Shift(ctx context.Context, code string, newStart time.Time) (*contract.ShiftResult, error)
	SetDates(ctx context.Context, code string, start, end time.Time) (*contract.ShiftResult, error)
}

// ImportResult holds the outcome of a plan import.
type ImportResult struct {
	TaskCount       int
	DependencyCount int
	AssignmentCount int
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
