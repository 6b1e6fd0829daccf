package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/timeline"
)

// GanttRow is one task bar in a Gantt rendering.
type GanttRow struct {
	Code     string
	Name     string
	Start    *time.Time
	End      *time.Time
	Status   domain.TaskStatus
	Critical bool
}

const (
	ganttBar      = "█"
	ganttEmpty    = "·"
	ganttLabelMax = 28
)

// RenderGantt renders a static Gantt chart: timeline header bands on top,
// one bar row per task below, one character column per day. Critical-path
// bars are red, done bars green, everything else blue. Tasks without both
// planned dates render an empty row.
func RenderGantt(layout timeline.Layout, rows []GanttRow) string {
	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Code) + 1 + lipgloss.Width(r.Name); w > labelWidth {
			labelWidth = w
		}
	}
	if labelWidth > ganttLabelMax {
		labelWidth = ganttLabelMax
	}

	var b strings.Builder
	gutter := strings.Repeat(" ", labelWidth+2)

	b.WriteString(gutter + renderBandRow(layout.Years) + "\n")
	b.WriteString(gutter + renderBandRow(layout.Months) + "\n")
	switch layout.Scale {
	case timeline.ScaleWeek:
		b.WriteString(gutter + renderBandRow(layout.Weeks) + "\n")
	case timeline.ScaleDay:
		b.WriteString(gutter + renderBandRow(layout.Days) + "\n")
	}

	totalDays := layout.TotalDays()
	for _, r := range rows {
		label := truncate(r.Code+" "+r.Name, labelWidth)
		pad := labelWidth - lipgloss.Width(label)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(label + strings.Repeat(" ", pad) + "  ")
		b.WriteString(renderBar(layout.Start, totalDays, r))
		b.WriteString("\n")
	}

	return b.String()
}

func renderBandRow(bands []timeline.Band) string {
	var b strings.Builder
	for _, band := range bands {
		label := band.Label
		if len(label) > band.Days {
			// Numeric labels (day-of-month) keep their low digits; text
			// labels keep their prefix.
			if isDigits(label) {
				label = label[len(label)-band.Days:]
			} else {
				label = label[:band.Days]
			}
		}
		b.WriteString(StyleHeader.Render(label))
		b.WriteString(StyleDim.Render(strings.Repeat("─", band.Days-len(label))))
	}
	return b.String()
}

func renderBar(origin time.Time, totalDays int, r GanttRow) string {
	style := StyleBlue
	if r.Critical {
		style = StyleRed
	} else if r.Status == domain.StatusDone {
		style = StyleGreen
	}

	var b strings.Builder
	for i := 0; i < totalDays; i++ {
		day := origin.AddDate(0, 0, i)
		if r.Start != nil && r.End != nil && !day.Before(*r.Start) && !day.After(*r.End) {
			b.WriteString(style.Render(ganttBar))
		} else {
			b.WriteString(StyleDim.Render(ganttEmpty))
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return s[:max-1] + "…"
}
