package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/repository"
	"github.com/rvannest/joist/internal/testutil"
)

func newTaskService(t *testing.T) TaskService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewTaskService(repository.NewSQLiteTaskRepo(database))
}

func TestTaskServiceCreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Code: "1", Name: "Root"}
	require.NoError(t, svc.Create(ctx, task))

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.StatusNotStarted, task.Status)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := svc.GetByCode(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Root", got.Name)
}

func TestTaskServiceCreateRequiresExistingParent(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	parent := "9"
	err := svc.Create(ctx, &domain.Task{Code: "9.1", Name: "Orphan", ParentCode: &parent})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskServiceCreateValidation(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		task *domain.Task
	}{
		{"empty code", &domain.Task{Name: "X"}},
		{"empty name", &domain.Task{Code: "1"}},
		{"bad status", &domain.Task{Code: "1", Name: "X", Status: "paused"}},
		{"bad percent", &domain.Task{Code: "1", Name: "X", PercentComplete: 120}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Create(ctx, tc.task), domain.ErrValidation)
		})
	}
}

func TestTaskServiceCreateRejectsInvertedPlannedRange(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := testutil.NewTestTask("1", "Backwards",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 10), testutil.Date(2025, 1, 1)))
	assert.ErrorIs(t, svc.Create(ctx, task), domain.ErrValidation)
}

func TestTaskServiceUpdateAndDelete(t *testing.T) {
	svc := newTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Code: "1", Name: "Root"}
	require.NoError(t, svc.Create(ctx, task))

	task.Name = "Renamed"
	require.NoError(t, svc.Update(ctx, task))

	got, err := svc.GetByCode(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, svc.Delete(ctx, "1"))
	_, err = svc.GetByCode(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
