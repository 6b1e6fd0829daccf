package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/rvannest/joist/internal/cli"
	"github.com/rvannest/joist/internal/db"
	"github.com/rvannest/joist/internal/repository"
	"github.com/rvannest/joist/internal/service"
	"github.com/rvannest/joist/internal/timeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.joist/joist.db
	dbPath := os.Getenv("JOIST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".joist", "joist.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Observe use cases on stderr when asked for.
	var observers []service.UseCaseObserver
	if os.Getenv("JOIST_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Tasks:       service.NewTaskService(taskRepo),
		Deps:        service.NewDependencyService(taskRepo, depRepo),
		Assignments: service.NewAssignmentService(taskRepo, assignmentRepo),
		Schedule:    service.NewScheduleService(uow, taskRepo, depRepo, assignmentRepo, observers...),
		Import:      service.NewImportService(uow, observers...),

		Timeline: timeline.NewProvider(timeline.NewTTLCache(5*time.Minute, 32)),
	}

	// Detect interactive terminal for forms and the live Gantt view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
