package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/cli/formatter"
	"github.com/rvannest/joist/internal/domain"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage dependencies between tasks",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepRemoveCmd(app),
		newDepListCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var depType string
	var lag float64

	cmd := &cobra.Command{
		Use:   "add PREDECESSOR SUCCESSOR",
		Short: "Create a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Dependency{
				PredecessorCode: args[0],
				SuccessorCode:   args[1],
				Type:            domain.DependencyType(depType),
				LagDays:         lag,
			}
			if err := app.Deps.Add(context.Background(), d); err != nil {
				return err
			}
			fmt.Printf("Added %s dependency %s -> %s\n", d.Type, d.PredecessorCode, d.SuccessorCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&depType, "type", "FS", "Dependency type (FS|SS|FF|SF)")
	cmd.Flags().Float64Var(&lag, "lag", 0, "Lag in days (may be negative)")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove PREDECESSOR SUCCESSOR",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Deps.Remove(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed dependency %s -> %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all dependency edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Deps.List(context.Background())
			if err != nil {
				return err
			}
			if len(deps) == 0 {
				fmt.Println("No dependencies.")
				return nil
			}

			rows := make([][]string, 0, len(deps))
			for _, d := range deps {
				rows = append(rows, []string{
					d.PredecessorCode,
					d.SuccessorCode,
					string(d.Type),
					formatter.FormatDays(d.LagDays),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"PREDECESSOR", "SUCCESSOR", "TYPE", "LAG"}, rows))
			return nil
		},
	}
	return cmd
}
