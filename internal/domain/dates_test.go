package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 4, DaysBetween(date(2025, 1, 1), date(2025, 1, 5)))
	assert.Equal(t, -4, DaysBetween(date(2025, 1, 5), date(2025, 1, 1)))
	assert.Equal(t, 0, DaysBetween(date(2025, 1, 1), date(2025, 1, 1)))
}

func TestAddDays_NegativeLag(t *testing.T) {
	got := AddDays(date(2025, 1, 10), -2)
	assert.Equal(t, date(2025, 1, 8), got)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-12-02")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("02/12/2025")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCodeSortKey_NumericTreeOrder(t *testing.T) {
	assert.Less(t, CodeSortKey("1.2"), CodeSortKey("1.10"))
	assert.Less(t, CodeSortKey("1"), CodeSortKey("1.1"))
	assert.Equal(t, "0001.0010.0002", CodeSortKey("1.10.2"))
}
