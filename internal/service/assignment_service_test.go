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

func newAssignmentFixture(t *testing.T) (TaskService, AssignmentService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)
	return NewTaskService(tasks), NewAssignmentService(tasks, assignments)
}

func TestAssignmentServiceAssignAndList(t *testing.T) {
	tasks, assignments := newAssignmentFixture(t)
	ctx := context.Background()

	require.NoError(t, tasks.Create(ctx, &domain.Task{Code: "1", Name: "Root"}))
	require.NoError(t, assignments.Assign(ctx, "1", "John"))

	got, err := assignments.ListByTask(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].Owner)
	assert.NotEmpty(t, got[0].ID)
}

func TestAssignmentServiceValidation(t *testing.T) {
	tasks, assignments := newAssignmentFixture(t)
	ctx := context.Background()

	require.NoError(t, tasks.Create(ctx, &domain.Task{Code: "1", Name: "Root"}))

	assert.ErrorIs(t, assignments.Assign(ctx, "1", "  "), domain.ErrValidation)
	assert.ErrorIs(t, assignments.Assign(ctx, "404", "John"), domain.ErrNotFound)
}

func TestAssignmentServiceUnassign(t *testing.T) {
	tasks, assignments := newAssignmentFixture(t)
	ctx := context.Background()

	require.NoError(t, tasks.Create(ctx, &domain.Task{Code: "1", Name: "Root"}))
	require.NoError(t, assignments.Assign(ctx, "1", "John"))
	require.NoError(t, assignments.Unassign(ctx, "1", "John"))

	got, err := assignments.ListByTask(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
