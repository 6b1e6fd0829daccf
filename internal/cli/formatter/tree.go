package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvannest/joist/internal/domain"
)

// TreeItem represents a single task row in a tree display.
type TreeItem struct {
	Code   string
	Name   string
	Level  int
	IsLast bool
	Status domain.TaskStatus
	Detail string // right-aligned badge, e.g. a date range or progress
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders tasks as an indented tree using box-drawing connectors.
// Done tasks get a green ✔ prefix and dimmed name, in-progress tasks an
// amber ▶ prefix; detail badges are right-aligned past the widest row.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := StyleDim.Render(item.Code+" ") + item.Name
		statusPrefix := ""
		switch item.Status {
		case domain.StatusDone:
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(item.Code + " " + item.Name)
		case domain.StatusInProgress:
			statusPrefix = StyleYellowBold.Render("▶ ")
			title = StyleDim.Render(item.Code+" ") + StyleYellowBold.Render(item.Name)
		case domain.StatusBlocked:
			statusPrefix = StyleRed.Render("■ ")
		}

		content := prefix + statusPrefix + title
		lines[idx].content = content

		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
