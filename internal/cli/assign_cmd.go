package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/cli/formatter"
)

func newAssignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Manage task owners",
	}

	cmd.AddCommand(
		newAssignAddCmd(app),
		newAssignRemoveCmd(app),
		newAssignListCmd(app),
	)

	return cmd
}

func newAssignAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add CODE OWNER",
		Short: "Assign an owner to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Assign(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Assigned %s to task %s\n", args[1], args[0])
			return nil
		},
	}
	return cmd
}

func newAssignRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove CODE OWNER",
		Short: "Remove an owner from a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Unassign(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Unassigned %s from task %s\n", args[1], args[0])
			return nil
		},
	}
	return cmd
}

func newAssignListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list CODE",
		Short: "List a task's owners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.Assignments.ListByTask(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("No owners.")
				return nil
			}

			rows := make([][]string, 0, len(assignments))
			for _, a := range assignments {
				rows = append(rows, []string{a.Owner, formatter.HumanTimestamp(a.CreatedAt)})
			}
			fmt.Print(formatter.RenderTable([]string{"OWNER", "SINCE"}, rows))
			return nil
		},
	}
	return cmd
}
