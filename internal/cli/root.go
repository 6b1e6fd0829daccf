package cli

import (
	"github.com/spf13/cobra"

	"github.com/rvannest/joist/internal/service"
	"github.com/rvannest/joist/internal/timeline"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks       service.TaskService
	Deps        service.DependencyService
	Assignments service.AssignmentService
	Schedule    service.ScheduleService
	Import      service.ImportService

	// Timeline serves cached Gantt header layouts.
	Timeline *timeline.Provider

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the live Gantt view are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) timelineLayouts() *timeline.Provider {
	if a.Timeline == nil {
		a.Timeline = timeline.NewProvider(nil)
	}
	return a.Timeline
}

// NewRootCmd creates the top-level "joist" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "joist",
		Short: "WBS planner and Gantt scheduling engine",
	}

	root.AddCommand(
		newTaskCmd(app),
		newDepCmd(app),
		newAssignCmd(app),
		newTreeCmd(app),
		newScheduleCmd(app),
		newGanttCmd(app),
		newImportCmd(app),
	)

	return root
}
