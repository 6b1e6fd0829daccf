package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/scheduler"
	"github.com/rvannest/joist/internal/testutil"
)

func depsOf(edges ...*domain.Dependency) []domain.Dependency {
	out := make([]domain.Dependency, len(edges))
	for i, e := range edges {
		out[i] = *e
	}
	return out
}

func TestTopoOrderRespectsEdges(t *testing.T) {
	a := testutil.NewTestTask("1", "A")
	b := testutil.NewTestTask("2", "B")
	c := testutil.NewTestTask("3", "C")
	s := scheduler.NewSnapshot([]*domain.Task{c, b, a}, depsOf(
		testutil.NewTestDependency("1", "2"),
		testutil.NewTestDependency("2", "3"),
	), nil)

	order, cyclic := scheduler.TopoOrder(s)

	assert.False(t, cyclic)
	assert.Equal(t, []string{"1", "2", "3"}, order)
}

func TestTopoOrderDetectsCycle(t *testing.T) {
	a := testutil.NewTestTask("1", "A")
	b := testutil.NewTestTask("2", "B")
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2"),
		testutil.NewTestDependency("2", "1"),
	), nil)

	_, cyclic := scheduler.TopoOrder(s)
	assert.True(t, cyclic)
}

func TestOptimizeFinishToStartWithLag(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 3)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2", testutil.WithLag(1)),
	), nil)

	outcome := scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))

	assert.False(t, outcome.Cyclic)
	require.Len(t, outcome.Changes, 1)
	assert.Equal(t, "2", outcome.Changes[0].Code)
	assert.Equal(t, testutil.Date(2025, 1, 6), *b.PlannedStart)
	// Two-day span preserved.
	assert.Equal(t, testutil.Date(2025, 1, 8), *b.PlannedEnd)
	// Anchor is never rescheduled.
	assert.Equal(t, testutil.Date(2025, 1, 1), *a.PlannedStart)
}

func TestOptimizeStartToStartAnchorsOnPredecessorStart(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 10), testutil.Date(2025, 1, 20)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2", testutil.WithType(domain.StartToStart), testutil.WithLag(2)),
	), nil)

	scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))

	assert.Equal(t, testutil.Date(2025, 1, 12), *b.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 1, 13), *b.PlannedEnd)
}

func TestOptimizeTakesLatestConstraint(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 3)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 8)))
	c := testutil.NewTestTask("3", "C",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b, c}, depsOf(
		testutil.NewTestDependency("1", "3"),
		testutil.NewTestDependency("2", "3"),
	), nil)

	scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))

	// B finishes later than A, so C starts from B's end.
	assert.Equal(t, testutil.Date(2025, 1, 8), *c.PlannedStart)
}

func TestOptimizeParentContainmentFloor(t *testing.T) {
	root := testutil.NewTestTask("1", "Root",
		testutil.WithPlannedDates(testutil.Date(2025, 2, 1), testutil.Date(2025, 2, 28)))
	child := testutil.NewTestTask("1.1", "Child",
		testutil.WithParent("1"),
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 3)))
	s := scheduler.NewSnapshot([]*domain.Task{root, child}, nil, nil)

	scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))

	assert.Equal(t, testutil.Date(2025, 2, 1), *child.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 2, 3), *child.PlannedEnd)
}

func TestOptimizeRootFloorOnlyForUnconstrainedTasks(t *testing.T) {
	anchor := testutil.NewTestTask("1", "Anchor",
		testutil.WithPlannedDates(testutil.Date(2025, 3, 10), testutil.Date(2025, 3, 20)))
	free := testutil.NewTestTask("2", "Free",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	pred := testutil.NewTestTask("3", "Pred",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	succ := testutil.NewTestTask("4", "Succ",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 5), testutil.Date(2025, 1, 6)))
	s := scheduler.NewSnapshot([]*domain.Task{anchor, free, pred, succ}, depsOf(
		testutil.NewTestDependency("3", "4"),
	), nil)

	scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))

	// No predecessors: floored at the anchor's start.
	assert.Equal(t, testutil.Date(2025, 3, 10), *free.PlannedStart)
	// Has a predecessor: the anchor floor does not apply.
	assert.Equal(t, testutil.Date(2025, 1, 2), *succ.PlannedStart)
}

func TestOptimizeFallsBackToToday(t *testing.T) {
	anchor := testutil.NewTestTask("1", "Anchor")
	bare := testutil.NewTestTask("2", "Bare")
	s := scheduler.NewSnapshot([]*domain.Task{anchor, bare}, nil, nil)

	today := testutil.Date(2025, 5, 15)
	scheduler.Optimize(s, "1", today)

	require.NotNil(t, bare.PlannedStart)
	assert.Equal(t, today, *bare.PlannedStart)
	assert.Equal(t, today, *bare.PlannedEnd) // zero span
}

func TestOptimizeCycleDegradesToInsertionOrder(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 3)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2"),
		testutil.NewTestDependency("2", "1"),
	), nil)

	outcome := scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))

	assert.True(t, outcome.Cyclic)
	// The pass still runs; B lands after A's end.
	assert.Equal(t, testutil.Date(2025, 1, 5), *b.PlannedStart)
}

func TestOptimizeUnchangedTasksNotReported(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 5), testutil.Date(2025, 1, 7)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2", testutil.WithType(domain.FinishToFinish), testutil.WithLag(0)),
	), nil)

	// B already starts exactly at A's end; nothing moves.
	outcome := scheduler.Optimize(s, "1", testutil.Date(2025, 1, 1))
	assert.Empty(t, outcome.Changes)
	assert.Empty(t, s.DirtyTasks())
}
