package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/scheduler"
	"github.com/rvannest/joist/internal/testutil"
)

func TestShiftTranslatesSubtree(t *testing.T) {
	x := testutil.NewTestTask("1", "X",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	y := testutil.NewTestTask("1.1", "Y",
		testutil.WithParent("1"),
		testutil.WithPlannedDates(testutil.Date(2025, 1, 2), testutil.Date(2025, 1, 4)))
	s := snapshotOf(x, y)

	shifted, err := scheduler.Shift(s, "1", testutil.Date(2025, 1, 6))
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2025, 1, 6), *shifted.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 1, 10), *shifted.PlannedEnd)
	assert.Equal(t, testutil.Date(2025, 1, 7), *y.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 1, 9), *y.PlannedEnd)
}

func TestShiftBackwards(t *testing.T) {
	x := testutil.NewTestTask("1", "X",
		testutil.WithPlannedDates(testutil.Date(2025, 3, 10), testutil.Date(2025, 3, 14)))
	s := snapshotOf(x)

	_, err := scheduler.Shift(s, "1", testutil.Date(2025, 3, 3))
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2025, 3, 3), *x.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 3, 7), *x.PlannedEnd)
}

func TestShiftZeroDeltaIsNoOp(t *testing.T) {
	x := testutil.NewTestTask("1", "X",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	s := snapshotOf(x)

	_, err := scheduler.Shift(s, "1", testutil.Date(2025, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, s.DirtyTasks())
}

func TestShiftRollsUpAncestors(t *testing.T) {
	root := testutil.NewTestTask("1", "Root",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	child := testutil.NewTestTask("1.1", "Child",
		testutil.WithParent("1"),
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	s := snapshotOf(root, child)

	_, err := scheduler.Shift(s, "1.1", testutil.Date(2025, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2025, 1, 3), *root.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 1, 7), *root.PlannedEnd)
}

func TestShiftUnknownTask(t *testing.T) {
	s := snapshotOf()

	_, err := scheduler.Shift(s, "9", testutil.Date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShiftWithoutPlannedDates(t *testing.T) {
	x := testutil.NewTestTask("1", "Undated")
	s := snapshotOf(x)

	_, err := scheduler.Shift(s, "1", testutil.Date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetDatesOverwritesSingleTask(t *testing.T) {
	root := testutil.NewTestTask("1", "Root")
	x := testutil.NewTestTask("1.1", "X",
		testutil.WithParent("1"),
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5)))
	y := testutil.NewTestTask("1.1.1", "Y",
		testutil.WithParent("1.1"),
		testutil.WithPlannedDates(testutil.Date(2025, 1, 2), testutil.Date(2025, 1, 4)))
	s := snapshotOf(root, x, y)

	_, err := scheduler.SetDates(s, "1.1", testutil.Date(2025, 2, 1), testutil.Date(2025, 2, 10))
	require.NoError(t, err)

	assert.Equal(t, testutil.Date(2025, 2, 1), *x.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 2, 10), *x.PlannedEnd)
	// Descendants stay put, the ancestor absorbs the new range.
	assert.Equal(t, testutil.Date(2025, 1, 2), *y.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 2, 1), *root.PlannedStart)
	assert.Equal(t, testutil.Date(2025, 2, 10), *root.PlannedEnd)
}

func TestSetDatesRejectsInvertedRange(t *testing.T) {
	x := testutil.NewTestTask("1", "X")
	s := snapshotOf(x)

	_, err := scheduler.SetDates(s, "1", testutil.Date(2025, 1, 10), testutil.Date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
