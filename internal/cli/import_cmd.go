package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a JSON file",
		Long: `Import tasks, dependencies, and assignments from a JSON plan file.
The whole import runs in a single transaction; a validation failure
leaves the database untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d task(s), %d dependency(ies), %d assignment(s)\n",
				result.TaskCount, result.DependencyCount, result.AssignmentCount)
			return nil
		},
	}
	return cmd
}
