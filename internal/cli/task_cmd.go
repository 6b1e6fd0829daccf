package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/cli/formatter"
	"github.com/rvannest/joist/internal/contract"
	"github.com/rvannest/joist/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks in the work-breakdown tree",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskInspectCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
		newTaskSetDatesCmd(app),
		newTaskShiftCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var code, name, parent, status string
	var order int
	var duration, percent float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without flags on a terminal, fall back to the interactive form.
			if code == "" && name == "" && app.interactive() {
				if err := runTaskForm(&code, &name, &parent, &status); err != nil {
					return err
				}
			}

			t := &domain.Task{
				Code:       code,
				Name:       name,
				OrderIndex: order,
			}
			if parent != "" {
				t.ParentCode = &parent
			}
			if status != "" {
				t.Status = domain.TaskStatus(status)
			}
			if cmd.Flags().Changed("duration") {
				t.DurationDays = &duration
			}
			t.PercentComplete = percent

			start, err := parseDateFlag(cmd.Flags(), "start")
			if err != nil {
				return err
			}
			end, err := parseDateFlag(cmd.Flags(), "end")
			if err != nil {
				return err
			}
			t.PlannedStart = start
			t.PlannedEnd = end

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", t.Code, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Task code (dotted-decimal, e.g. 1.2.3)")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent task code")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|done|blocked)")
	cmd.Flags().IntVar(&order, "order", 0, "Order index among siblings")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Duration in days")
	cmd.Flags().Float64Var(&percent, "percent", 0, "Percent complete [0,100]")
	addDateFlag(cmd.Flags(), new(string), "start", "Planned start")
	addDateFlag(cmd.Flags(), new(string), "end", "Planned end")

	return cmd
}

func newTaskInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect CODE",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Tasks.GetByCode(ctx, args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s  %s\n\n", formatter.Bold(t.Name), formatter.Dim(t.Code)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("STATUS "), formatter.StatusPill(t.Status)))
			if t.ParentCode != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PARENT "), *t.ParentCode))
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("PLANNED"), formatter.DateRange(t.PlannedStart, t.PlannedEnd)))
			if t.ActualStart != nil || t.ActualEnd != nil {
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("ACTUAL "), formatter.DateRange(t.ActualStart, t.ActualEnd)))
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("LENGTH "), formatter.FormatDays(t.EffectiveDurationDays())))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("DONE   "), formatter.RenderProgress(t.PercentComplete, 16)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("UPDATED"), formatter.HumanTimestamp(t.UpdatedAt)))

			owners, err := app.Assignments.ListByTask(ctx, t.Code)
			if err != nil {
				return err
			}
			if len(owners) > 0 {
				names := make([]string, 0, len(owners))
				for _, a := range owners {
					names = append(names, a.Owner)
				}
				b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Dim("OWNERS "), strings.Join(names, ", ")))
			}

			children, err := app.Tasks.ListChildren(ctx, t.Code)
			if err != nil {
				return err
			}
			if len(children) > 0 {
				b.WriteString("\n")
				b.WriteString(formatter.Header("Children"))
				b.WriteString("\n")
				rows := make([][]string, 0, len(children))
				for _, c := range children {
					rows = append(rows, []string{
						c.Code,
						c.Name,
						formatter.DateRange(c.PlannedStart, c.PlannedEnd),
						formatter.FormatPercent(c.PercentComplete),
					})
				}
				b.WriteString(formatter.RenderTable([]string{"CODE", "NAME", "PLANNED", "DONE"}, rows))
			}

			fmt.Print(formatter.RenderBox("Task", b.String()))
			return nil
		},
	}
	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, status string
	var order int
	var duration, percent float64

	cmd := &cobra.Command{
		Use:   "update CODE",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Tasks.GetByCode(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("status") {
				t.Status = domain.TaskStatus(status)
			}
			if cmd.Flags().Changed("order") {
				t.OrderIndex = order
			}
			if cmd.Flags().Changed("duration") {
				t.DurationDays = &duration
			}
			if cmd.Flags().Changed("percent") {
				t.PercentComplete = percent
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated task %s\n", t.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started|in_progress|done|blocked)")
	cmd.Flags().IntVar(&order, "order", 0, "Order index among siblings")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Duration in days")
	cmd.Flags().Float64Var(&percent, "percent", 0, "Percent complete [0,100]")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a task and its subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func newTaskSetDatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-dates CODE START END",
		Short: "Overwrite a task's planned range and roll up its ancestors",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseDate(args[1])
			if err != nil {
				return err
			}
			end, err := domain.ParseDate(args[2])
			if err != nil {
				return err
			}

			result, err := app.Schedule.SetDates(context.Background(), args[0], start, end)
			if err != nil {
				return err
			}

			printMoved(result.Moved)
			return nil
		},
	}
	return cmd
}

func newTaskShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift CODE NEW_START",
		Short: "Shift a task and its whole subtree to a new start date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newStart, err := domain.ParseDate(args[1])
			if err != nil {
				return err
			}

			result, err := app.Schedule.Shift(context.Background(), args[0], newStart)
			if err != nil {
				return err
			}

			printMoved(result.Moved)
			return nil
		},
	}
	return cmd
}

func printMoved(moved []contract.TaskDates) {
	if len(moved) == 0 {
		fmt.Println("Nothing moved.")
		return
	}
	rows := make([][]string, 0, len(moved))
	for _, m := range moved {
		rows = append(rows, []string{m.Code, m.Start, m.End})
	}
	fmt.Print(formatter.RenderTable([]string{"CODE", "START", "END"}, rows))
}
