package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvannest/joist/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DateOrDash formats an optional date, rendering a dimmed dash when absent.
func DateOrDash(t *time.Time) string {
	if t == nil {
		return StyleDim.Render("--")
	}
	return domain.ISODate(*t)
}

// DateRange formats a planned range like "2025-01-01 → 2025-01-12".
func DateRange(start, end *time.Time) string {
	return fmt.Sprintf("%s %s %s", DateOrDash(start), StyleDim.Render("→"), DateOrDash(end))
}

// FormatDays renders a day count, dropping a trailing ".0".
func FormatDays(days float64) string {
	if days == float64(int(days)) {
		return fmt.Sprintf("%dd", int(days))
	}
	return fmt.Sprintf("%.1fd", days)
}

// FormatPercent renders a completion percentage.
func FormatPercent(pct float64) string {
	if pct == float64(int(pct)) {
		return fmt.Sprintf("%d%%", int(pct))
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// SlackBadge colors a slack value: zero slack is critical.
func SlackBadge(slackDays float64) string {
	text := FormatDays(slackDays)
	if slackDays == 0 {
		return StyleRed.Render(text)
	}
	if slackDays <= 2 {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}
