package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/cli/formatter"
	"github.com/rvannest/joist/internal/timeline"
)

func newGanttCmd(app *App) *cobra.Command {
	var scaleStr string

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Render the plan as a Gantt chart",
		Long: `Render every task as a bar on a shared day-per-column timeline.
Critical-path bars are red, done bars green, everything else blue.
On a terminal this opens a scrollable view; otherwise the chart is
printed once and the command exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, err := timeline.ParseScale(scaleStr)
			if err != nil {
				return err
			}

			content, err := renderGanttContent(app, scale)
			if err != nil {
				return err
			}
			if content == "" {
				fmt.Println("Nothing to chart. Add planned dates first.")
				return nil
			}

			if !app.interactive() {
				fmt.Print(content)
				return nil
			}

			_, err = tea.NewProgram(newGanttModel(app, scale), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&scaleStr, "scale", "week", "Header scale (day|week|month)")

	return cmd
}

// renderGanttContent builds the full chart for the current plan, or "" when
// no task carries a complete planned range.
func renderGanttContent(app *App, scale timeline.Scale) (string, error) {
	ctx := context.Background()

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	cp, err := app.Schedule.CriticalPath(ctx)
	if err != nil {
		return "", err
	}
	critical := make(map[string]bool, len(cp.CriticalCodes))
	for _, code := range cp.CriticalCodes {
		critical[code] = true
	}

	var start, end time.Time
	var dated bool
	rows := make([]formatter.GanttRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, formatter.GanttRow{
			Code:     t.Code,
			Name:     t.Name,
			Start:    t.PlannedStart,
			End:      t.PlannedEnd,
			Status:   t.Status,
			Critical: critical[t.Code],
		})
		if !t.HasPlannedDates() {
			continue
		}
		if !dated || t.PlannedStart.Before(start) {
			start = *t.PlannedStart
		}
		if !dated || t.PlannedEnd.After(end) {
			end = *t.PlannedEnd
		}
		dated = true
	}
	if !dated {
		return "", nil
	}

	layout := app.timelineLayouts().Layout(start, end, scale)
	return formatter.RenderGantt(layout, rows), nil
}
