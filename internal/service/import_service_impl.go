package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/db"
	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/importer"
	"github.com/rvannest/joist/internal/repository"
	"github.com/rvannest/joist/internal/scheduler"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlanFromSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["tasks"] = result.TaskCount
			fields["dependencies"] = result.DependencyCount
			fields["assignments"] = result.AssignmentCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)

	// The whole plan lands in one transaction, with parent ranges and
	// progress already rolled up from the imported leaves.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)

		for _, t := range generated.Tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Code, err)
			}
		}
		for _, d := range generated.Dependencies {
			if err := txDeps.Create(ctx, &d); err != nil {
				return fmt.Errorf("creating dependency %q -> %q: %w", d.PredecessorCode, d.SuccessorCode, err)
			}
		}
		for _, a := range generated.Assignments {
			if err := txAssignments.Create(ctx, a); err != nil {
				return fmt.Errorf("assigning %q to %q: %w", a.Owner, a.TaskCode, err)
			}
		}

		snap := scheduler.NewSnapshot(generated.Tasks, generated.Dependencies, nil)
		scheduler.RollupAll(snap)
		for _, t := range snap.DirtyTasks() {
			if err := txTasks.Update(ctx, t); err != nil {
				return fmt.Errorf("rolling up task %q: %w", t.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		TaskCount:       len(generated.Tasks),
		DependencyCount: len(generated.Dependencies),
		AssignmentCount: len(generated.Assignments),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}
