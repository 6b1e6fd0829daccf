package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/scheduler"
	"github.com/rvannest/joist/internal/testutil"
)

func TestAllocateCountsOwnerDays(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 3)))
	b := testutil.NewTestTask("2", "B",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 2), testutil.Date(2025, 1, 4)))
	owners := map[string][]string{
		"1": {"John"},
		"2": {"John", "Mary"},
	}
	s := scheduler.NewSnapshot([]*domain.Task{a, b}, nil, owners)

	cal := scheduler.Allocate(s, testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 4))

	require.Len(t, cal, 4)
	assert.Equal(t, map[string]int{"John": 1}, cal["2025-01-01"])
	assert.Equal(t, map[string]int{"John": 2, "Mary": 1}, cal["2025-01-02"])
	assert.Equal(t, map[string]int{"John": 2, "Mary": 1}, cal["2025-01-03"])
	assert.Equal(t, map[string]int{"John": 1, "Mary": 1}, cal["2025-01-04"])
}

func TestAllocateSkipsUndatedAndUnownedTasks(t *testing.T) {
	undated := testutil.NewTestTask("1", "Undated")
	unowned := testutil.NewTestTask("2", "Unowned",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2)))
	s := scheduler.NewSnapshot([]*domain.Task{undated, unowned}, nil, map[string][]string{
		"1": {"John"},
	})

	cal := scheduler.Allocate(s, testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 2))

	assert.Empty(t, cal["2025-01-01"])
	assert.Empty(t, cal["2025-01-02"])
}

func TestAllocateClipsToWindow(t *testing.T) {
	a := testutil.NewTestTask("1", "A",
		testutil.WithPlannedDates(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 10)))
	s := scheduler.NewSnapshot([]*domain.Task{a}, nil, map[string][]string{
		"1": {"John"},
	})

	cal := scheduler.Allocate(s, testutil.Date(2025, 1, 4), testutil.Date(2025, 1, 5))

	require.Len(t, cal, 2)
	assert.Equal(t, 1, cal["2025-01-04"]["John"])
	assert.Equal(t, 1, cal["2025-01-05"]["John"])
}

func TestIdentifyConflictsStrictThreshold(t *testing.T) {
	cal := scheduler.Calendar{
		"2025-01-02": {"John": 4},
		"2025-01-01": {"John": 4, "Mary": 1},
		"2025-01-03": {"John": 3},
	}

	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, scheduler.IdentifyConflicts(cal, 3))
	// At the threshold is not a conflict.
	assert.Empty(t, scheduler.IdentifyConflicts(cal, 4))
}

func TestIdentifyConflictsAnyOwnerTriggersDay(t *testing.T) {
	cal := scheduler.Calendar{
		"2025-02-01": {"John": 1, "Mary": 5},
	}

	assert.Equal(t, []string{"2025-02-01"}, scheduler.IdentifyConflicts(cal, 2))
}
