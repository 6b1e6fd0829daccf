package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/cli/formatter"
	"github.com/rvannest/joist/internal/domain"
)

func newTreeCmd(app *App) *cobra.Command {
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the work-breakdown tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks. Add one with 'joist task add' or 'joist import'.")
				return nil
			}

			items := buildTreeItems(tasks, showProgress)
			fmt.Print(formatter.RenderTree(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show percent complete instead of dates")

	return cmd
}

// buildTreeItems converts tree-ordered tasks into renderable rows, deriving
// each row's depth and last-sibling flag from parent links.
func buildTreeItems(tasks []*domain.Task, showProgress bool) []formatter.TreeItem {
	depth := make(map[string]int, len(tasks))
	lastChild := make(map[string]string) // parent code -> last child's code
	for _, t := range tasks {
		if t.ParentCode == nil {
			depth[t.Code] = 0
			continue
		}
		depth[t.Code] = depth[*t.ParentCode] + 1
		lastChild[*t.ParentCode] = t.Code
	}

	items := make([]formatter.TreeItem, 0, len(tasks))
	for _, t := range tasks {
		isLast := t.ParentCode != nil && lastChild[*t.ParentCode] == t.Code

		detail := ""
		if showProgress {
			detail = formatter.FormatPercent(t.PercentComplete)
		} else if t.HasPlannedDates() {
			detail = domain.ISODate(*t.PlannedStart) + " → " + domain.ISODate(*t.PlannedEnd)
		}

		items = append(items, formatter.TreeItem{
			Code:   t.Code,
			Name:   t.Name,
			Level:  depth[t.Code],
			IsLast: isLast,
			Status: t.Status,
			Detail: detail,
		})
	}
	return items
}
