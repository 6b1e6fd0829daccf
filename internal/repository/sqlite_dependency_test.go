package repository

import (
	"context"
	"testing"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTasks(t *testing.T, repo *SQLiteTaskRepo, codes ...string) {
	t.Helper()
	for _, code := range codes {
		require.NoError(t, repo.Create(context.Background(), testutil.NewTestTask(code, "Task "+code)))
	}
}

func TestDependencyRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	deps := NewSQLiteDependencyRepo(database)
	ctx := context.Background()

	seedTasks(t, tasks, "1.1", "1.2")
	require.NoError(t, deps.Create(ctx, testutil.NewTestDependency("1.1", "1.2",
		testutil.WithType(domain.StartToStart), testutil.WithLag(2.5))))

	preds, err := deps.ListBySuccessor(ctx, "1.2")
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "1.1", preds[0].PredecessorCode)
	assert.Equal(t, domain.StartToStart, preds[0].Type)
	assert.Equal(t, 2.5, preds[0].LagDays)

	succs, err := deps.ListByPredecessor(ctx, "1.1")
	require.NoError(t, err)
	require.Len(t, succs, 1)
	assert.Equal(t, "1.2", succs[0].SuccessorCode)
}

func TestDependencyRepo_DuplicatePairRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	deps := NewSQLiteDependencyRepo(database)
	ctx := context.Background()

	seedTasks(t, tasks, "1.1", "1.2")
	require.NoError(t, deps.Create(ctx, testutil.NewTestDependency("1.1", "1.2")))
	assert.Error(t, deps.Create(ctx, testutil.NewTestDependency("1.1", "1.2", testutil.WithLag(3))))

	// Opposite direction is a logically independent edge.
	assert.NoError(t, deps.Create(ctx, testutil.NewTestDependency("1.2", "1.1")))
}

func TestDependencyRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	deps := NewSQLiteDependencyRepo(database)
	ctx := context.Background()

	seedTasks(t, tasks, "1.1", "1.2")
	require.NoError(t, deps.Create(ctx, testutil.NewTestDependency("1.1", "1.2")))
	require.NoError(t, deps.Delete(ctx, "1.1", "1.2"))

	all, err := deps.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
