package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/cli/formatter"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run scheduling computations over the plan",
	}

	cmd.AddCommand(
		newCriticalPathCmd(app),
		newConflictsCmd(app),
		newCalendarCmd(app),
		newOptimizeCmd(app),
		newRollupCmd(app),
	)

	return cmd
}

func newCriticalPathCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "critical-path",
		Short: "Compute earliest/latest dates, slack, and the critical path",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Schedule.CriticalPath(context.Background())
			if err != nil {
				return err
			}
			if len(result.Timings) == 0 {
				fmt.Println("No tasks with planned dates.")
				return nil
			}

			rows := make([][]string, 0, len(result.Timings))
			for _, t := range result.Timings {
				rows = append(rows, []string{
					t.Code,
					t.EarliestStart,
					t.EarliestFinish,
					t.LatestStart,
					t.LatestFinish,
					formatter.SlackBadge(t.SlackDays),
					formatter.CriticalBadge(t.Critical),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"CODE", "ES", "EF", "LS", "LF", "SLACK", "CRITICAL"}, rows))
			fmt.Printf("\nProject end: %s\n", formatter.Bold(result.ProjectEnd))
			return nil
		},
	}
	return cmd
}

func newConflictsCmd(app *App) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Find days where an owner exceeds the concurrency threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Schedule.Conflicts(context.Background(), threshold)
			if err != nil {
				return err
			}
			if len(report.Days) == 0 {
				fmt.Printf("No conflicts (threshold %d).\n", report.Threshold)
				return nil
			}

			rows := make([][]string, 0, len(report.Days))
			for _, day := range report.Days {
				owners := report.Calendar[day]
				names := make([]string, 0, len(owners))
				for owner, count := range owners {
					if count > report.Threshold {
						names = append(names, fmt.Sprintf("%s (%d)", owner, count))
					}
				}
				sort.Strings(names)
				rows = append(rows, []string{formatter.StyleRed.Render(day), strings.Join(names, ", ")})
			}
			fmt.Print(formatter.RenderTable([]string{"DATE", "OVERLOADED"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 3, "Max concurrent tasks per owner per day")

	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the day-by-day owner workload calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateFlag(cmd.Flags(), "from")
			if err != nil {
				return err
			}
			to, err := parseDateFlag(cmd.Flags(), "to")
			if err != nil {
				return err
			}

			var fromT, toT = timeOrZero(from), timeOrZero(to)
			cal, err := app.Schedule.ResourceCalendar(context.Background(), fromT, toT)
			if err != nil {
				return err
			}
			if len(cal.Days) == 0 {
				fmt.Println("Nothing scheduled.")
				return nil
			}

			days := make([]string, 0, len(cal.Days))
			for day := range cal.Days {
				days = append(days, day)
			}
			sort.Strings(days)

			rows := make([][]string, 0, len(days))
			for _, day := range days {
				owners := cal.Days[day]
				names := make([]string, 0, len(owners))
				for owner, count := range owners {
					names = append(names, fmt.Sprintf("%s (%d)", owner, count))
				}
				sort.Strings(names)
				rows = append(rows, []string{day, strings.Join(names, ", ")})
			}
			fmt.Print(formatter.RenderTable([]string{"DATE", "LOAD"}, rows))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), new(string), "from", "Window start")
	addDateFlag(cmd.Flags(), new(string), "to", "Window end")

	return cmd
}

func newOptimizeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Reschedule every task to its earliest feasible start",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Schedule.Optimize(context.Background())
			if err != nil {
				return err
			}

			if result.Cyclic {
				fmt.Println(formatter.StyleYellow.Render(
					"Warning: dependency cycle detected; processed tasks in stored order."))
			}
			if len(result.Changes) == 0 {
				fmt.Println("Schedule already optimal.")
				return nil
			}

			rows := make([][]string, 0, len(result.Changes))
			for _, c := range result.Changes {
				rows = append(rows, []string{c.Code, c.Start, c.End})
			}
			fmt.Print(formatter.RenderTable([]string{"CODE", "NEW START", "NEW END"}, rows))
			fmt.Printf("\nRescheduled %d task(s).\n", len(result.Changes))
			return nil
		},
	}
	return cmd
}

func newRollupCmd(app *App) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Recompute parent dates and progress from children",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var changed bool
			var err error
			if code != "" {
				changed, err = app.Schedule.Rollup(ctx, code)
			} else {
				changed, err = app.Schedule.RollupAll(ctx)
			}
			if err != nil {
				return err
			}

			if changed {
				fmt.Println("Rollup applied.")
			} else {
				fmt.Println("Already consistent.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Roll up a single subtree instead of every root")

	return cmd
}
