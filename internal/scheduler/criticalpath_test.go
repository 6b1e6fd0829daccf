package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/scheduler"
	"github.com/rvannest/joist/internal/testutil"
)

func TestCriticalPathSingleChain(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 6), testutil.Date(2025, 1, 8)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2"),
	), nil)

	res := scheduler.CriticalPath(s)

	require.Contains(t, res.Timings, "1")
	require.Contains(t, res.Timings, "2")

	ta := res.Timings["1"]
	assert.Equal(t, testutil.Date(2025, 1, 1), ta.EarliestStart)
	assert.Equal(t, testutil.Date(2025, 1, 5), ta.EarliestFinish)

	// B starts at A's earliest finish (finish-to-start equivalent, no lag).
	tb := res.Timings["2"]
	assert.Equal(t, testutil.Date(2025, 1, 5), tb.EarliestStart)
	assert.Equal(t, testutil.Date(2025, 1, 7), tb.EarliestFinish)
	assert.Equal(t, testutil.Date(2025, 1, 7), res.ProjectEnd)

	// A single chain has no slack anywhere.
	assert.True(t, res.Critical["1"])
	assert.True(t, res.Critical["2"])
	assert.Zero(t, ta.SlackDays())
	assert.Zero(t, tb.SlackDays())
}

func TestCriticalPathSlackOffPath(t *testing.T) {
	long := testutil.NewTestTask("1", "Long",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 10)))
	short := testutil.NewTestTask("2", "Short",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	join := testutil.NewTestTask("3", "Join",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 11), testutil.Date(2025, 1, 12)))
	s := scheduler.NewSnapshot([]*domain.Task{long, short, join}, depsOf(
		testutil.NewTestDependency("1", "3"),
		testutil.NewTestDependency("2", "3"),
	), nil)

	res := scheduler.CriticalPath(s)

	assert.True(t, res.Critical["1"])
	assert.True(t, res.Critical["3"])
	assert.False(t, res.Critical["2"])
	assert.Equal(t, 8.0, res.Timings["2"].SlackDays())
}

func TestCriticalPathLagPushesSuccessor(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 3)))
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, depsOf(
		testutil.NewTestDependency("1", "2", testutil.WithLag(2)),
	), nil)

	res := scheduler.CriticalPath(s)

	assert.Equal(t, testutil.Date(2025, 1, 7), res.Timings["2"].EarliestStart)
}

func TestCriticalPathSkipsUndatedTasks(t *testing.T) {
	dated := testutil.NewTestTask("1", "Dated",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	undated := testutil.NewTestTask("2", "Undated")
	s := scheduler.NewSnapshot([]*domain.Task{dated, undated}, nil, nil)

	res := scheduler.CriticalPath(s)

	assert.Contains(t, res.Timings, "1")
	assert.NotContains(t, res.Timings, "2")
}

func TestCriticalPathForwardReferenceFallsBackToPlannedStart(t *testing.T) {
	// Tree order puts the successor before its predecessor; the forward pass
	// has no earliest finish for the predecessor yet and keeps the
	// successor's own planned start.
	succ := testutil.NewTestTask("1", "Succ",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 4), testutil.Date(2025, 1, 6)))
	pred := testutil.NewTestTask("2", "Pred",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 10)))
	s := scheduler.NewSnapshot([]*domain.Task{succ, pred}, depsOf(
		testutil.NewTestDependency("2", "1"),
	), nil)

	res := scheduler.CriticalPath(s)

	assert.Equal(t, testutil.Date(2025, 1, 4), res.Timings["1"].EarliestStart)
}

func TestCriticalPathEmptySnapshot(t *testing.T) {
	res := scheduler.CriticalPath(snapshotOf())

	assert.Empty(t, res.Timings)
	assert.Empty(t, res.Critical)
}
