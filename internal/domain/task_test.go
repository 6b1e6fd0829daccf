package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveDurationDays_StoredWins(t *testing.T) {
	dur := 5.0
	start := date(2025, 1, 1)
	end := date(2025, 1, 2)
	task := &Task{Code: "1", DurationDays: &dur, PlannedStart: &start, PlannedEnd: &end}

	assert.Equal(t, 5.0, task.EffectiveDurationDays())
}

func TestEffectiveDurationDays_DerivedInclusive(t *testing.T) {
	start := date(2025, 1, 1)
	end := date(2025, 1, 3)
	task := &Task{Code: "1", PlannedStart: &start, PlannedEnd: &end}

	assert.Equal(t, 3.0, task.EffectiveDurationDays())
}

func TestEffectiveDurationDays_NoData(t *testing.T) {
	task := &Task{Code: "1"}
	assert.Equal(t, 0.0, task.EffectiveDurationDays())
}

func TestSpanDays(t *testing.T) {
	start := date(2025, 1, 1)
	end := date(2025, 1, 5)
	task := &Task{Code: "1", PlannedStart: &start, PlannedEnd: &end}

	assert.Equal(t, 4, task.SpanDays())
	assert.Equal(t, 0, (&Task{Code: "2", PlannedStart: &start}).SpanDays())
}

func TestParseDependencyType(t *testing.T) {
	for _, s := range []string{"FS", "SS", "FF", "SF"} {
		dt, err := ParseDependencyType(s)
		assert.NoError(t, err)
		assert.Equal(t, DependencyType(s), dt)
	}

	_, err := ParseDependencyType("XX")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAnchorsOnEnd(t *testing.T) {
	assert.True(t, FinishToStart.AnchorsOnEnd())
	assert.True(t, FinishToFinish.AnchorsOnEnd())
	assert.False(t, StartToStart.AnchorsOnEnd())
	assert.False(t, StartToFinish.AnchorsOnEnd())
}
