package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/testutil"
	"github.com/rvannest/joist/internal/timeline"
)

func TestRenderProgressBounds(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 10), "░░░░░░░░░░")
	assert.Contains(t, RenderProgress(100, 10), "██████████")
	assert.Contains(t, RenderProgress(50, 10), "█████░░░░░")
	assert.Contains(t, RenderProgress(50, 10), " 50%")
	// Out-of-range inputs clamp.
	assert.Contains(t, RenderProgress(-5, 4), "  0%")
	assert.Contains(t, RenderProgress(250, 4), "100%")
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"CODE", "NAME"},
		[][]string{
			{"1", "Root"},
			{"1.10", "Long child"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CODE")
	assert.Contains(t, lines[1], "────")
	assert.Contains(t, lines[2], "Root")
	assert.Contains(t, lines[3], "1.10")

	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTreeConnectorsAndBadges(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Code: "1", Name: "Root", Level: 0},
		{Code: "1.1", Name: "First", Level: 1, Status: domain.StatusDone},
		{Code: "1.2", Name: "Second", Level: 1, IsLast: true, Detail: "50%"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Root")
	assert.Contains(t, lines[1], "├─ ")
	assert.Contains(t, lines[1], "✔")
	assert.Contains(t, lines[2], "└─ ")
	assert.Contains(t, lines[2], "[ 50% ]")

	assert.Empty(t, RenderTree(nil))
}

func TestRenderGanttBars(t *testing.T) {
	layout := timeline.Compute(testutil.Date(2025, 1, 1), testutil.Date(2025, 1, 5), timeline.ScaleDay)
	start := testutil.Date(2025, 1, 2)
	end := testutil.Date(2025, 1, 4)

	out := RenderGantt(layout, []GanttRow{
		{Code: "1", Name: "Task", Start: &start, End: &end},
		{Code: "2", Name: "Undated"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Year, month, day header rows plus two bars.
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "2025")
	assert.Contains(t, lines[1], "Jan")
	assert.Contains(t, lines[3], "·███·")
	assert.Contains(t, lines[4], "·····")
}

func TestDateHelpers(t *testing.T) {
	d := testutil.Date(2025, 3, 1)
	assert.Contains(t, DateRange(&d, nil), "2025-03-01")
	assert.Contains(t, DateRange(nil, nil), "--")
	assert.Equal(t, "3d", FormatDays(3))
	assert.Equal(t, "1.5d", FormatDays(1.5))
	assert.Equal(t, "42%", FormatPercent(42))
	assert.Equal(t, "41.67%", FormatPercent(41.67))
}
