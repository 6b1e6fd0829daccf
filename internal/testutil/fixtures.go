package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/rvannest/joist/internal/domain"
)

// Date builds a UTC calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Task options
type TaskOption func(*domain.Task)

func WithParent(code string) TaskOption {
	return func(t *domain.Task) {
		t.ParentCode = &code
	}
}

func WithPlannedDates(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedStart = &start
		t.PlannedEnd = &end
	}
}

func WithPlannedStart(start time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedStart = &start
	}
}

func WithPlannedEnd(end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedEnd = &end
	}
}

func WithDuration(days float64) TaskOption {
	return func(t *domain.Task) {
		t.DurationDays = &days
	}
}

func WithPercent(pct float64) TaskOption {
	return func(t *domain.Task) {
		t.PercentComplete = pct
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithOrder(i int) TaskOption {
	return func(t *domain.Task) {
		t.OrderIndex = i
	}
}

// NewTestTask builds a task with sensible defaults for tests.
func NewTestTask(code, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Status:    domain.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestDependency builds an edge with an FS default.
func NewTestDependency(pred, succ string, opts ...func(*domain.Dependency)) *domain.Dependency {
	d := &domain.Dependency{
		PredecessorCode: pred,
		SuccessorCode:   succ,
		Type:            domain.FinishToStart,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func WithType(dt domain.DependencyType) func(*domain.Dependency) {
	return func(d *domain.Dependency) {
		d.Type = dt
	}
}

func WithLag(days float64) func(*domain.Dependency) {
	return func(d *domain.Dependency) {
		d.LagDays = days
	}
}

// NewTestAssignment links an owner to a task.
func NewTestAssignment(taskCode, owner string) *domain.Assignment {
	return &domain.Assignment{
		ID:        uuid.New().String(),
		TaskCode:  taskCode,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
}
