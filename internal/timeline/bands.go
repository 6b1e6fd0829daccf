// Package timeline computes the header band layout (years, months, weeks,
// days) for rendering a Gantt chart over a date range. Layouts are pure
// derived data; an injectable TTL cache avoids recomputing them per frame.
package timeline

import (
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// Scale selects which band rows a layout carries.
type Scale string

const (
	ScaleDay   Scale = "day"
	ScaleWeek  Scale = "week"
	ScaleMonth Scale = "month"
)

// ParseScale converts a string into a Scale.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleDay, ScaleWeek, ScaleMonth:
		return Scale(s), nil
	}
	return "", fmt.Errorf("%w: unknown scale %q", domain.ErrValidation, s)
}

// Band is one labelled segment of a header row. Days is the number of
// calendar days of the segment falling inside the layout's range, which is
// also its width in day columns.
type Band struct {
	Label string
	Start time.Time
	Days  int
}

// Layout holds the header rows for one date range and scale. Years and
// Months are always present; Weeks only at week scale, Days only at day
// scale.
type Layout struct {
	Start time.Time
	End   time.Time
	Scale Scale

	Years  []Band
	Months []Band
	Weeks  []Band
	Days   []Band
}

// TotalDays is the layout's width in day columns (inclusive range).
func (l Layout) TotalDays() int {
	return domain.DaysBetween(l.Start, l.End) + 1
}

// Compute builds the band layout for the inclusive range [start, end].
// When end precedes start the layout collapses to the single start day.
func Compute(start, end time.Time, scale Scale) Layout {
	start = domain.Midnight(start)
	end = domain.Midnight(end)
	if end.Before(start) {
		end = start
	}

	l := Layout{Start: start, End: end, Scale: scale}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		year := fmt.Sprintf("%d", d.Year())
		if n := len(l.Years); n == 0 || l.Years[n-1].Label != year {
			l.Years = append(l.Years, Band{Label: year, Start: d})
		}
		l.Years[len(l.Years)-1].Days++

		month := d.Format("Jan")
		if n := len(l.Months); n == 0 || !sameMonth(l.Months[n-1].Start, d) {
			l.Months = append(l.Months, Band{Label: month, Start: d})
		}
		l.Months[len(l.Months)-1].Days++

		if scale == ScaleWeek {
			_, week := d.ISOWeek()
			label := fmt.Sprintf("W%02d", week)
			if n := len(l.Weeks); n == 0 || l.Weeks[n-1].Label != label {
				l.Weeks = append(l.Weeks, Band{Label: label, Start: d})
			}
			l.Weeks[len(l.Weeks)-1].Days++
		}

		if scale == ScaleDay {
			l.Days = append(l.Days, Band{
				Label: fmt.Sprintf("%02d", d.Day()),
				Start: d,
				Days:  1,
			})
		}
	}

	return l
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
