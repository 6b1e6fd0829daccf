package service

import (
	"context"
	"fmt"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/repository"
)

type dependencyService struct {
	tasks repository.TaskRepo
	deps  repository.DependencyRepo
}

func NewDependencyService(tasks repository.TaskRepo, deps repository.DependencyRepo) DependencyService {
	return &dependencyService{tasks: tasks, deps: deps}
}

// Add validates both endpoints exist before inserting the edge. A cycle is
// not rejected here; the optimizer detects cycles structurally and degrades
// instead of failing, so edge creation stays cheap.
func (s *dependencyService) Add(ctx context.Context, d *domain.Dependency) error {
	if d.PredecessorCode == d.SuccessorCode {
		return fmt.Errorf("%w: task cannot depend on itself", domain.ErrValidation)
	}
	if d.Type == "" {
		d.Type = domain.FinishToStart
	}
	if _, err := domain.ParseDependencyType(string(d.Type)); err != nil {
		return err
	}
	if _, err := s.tasks.GetByCode(ctx, d.PredecessorCode); err != nil {
		return fmt.Errorf("predecessor %q: %w", d.PredecessorCode, err)
	}
	if _, err := s.tasks.GetByCode(ctx, d.SuccessorCode); err != nil {
		return fmt.Errorf("successor %q: %w", d.SuccessorCode, err)
	}
	return s.deps.Create(ctx, d)
}

func (s *dependencyService) Remove(ctx context.Context, predecessorCode, successorCode string) error {
	return s.deps.Delete(ctx, predecessorCode, successorCode)
}

func (s *dependencyService) List(ctx context.Context) ([]domain.Dependency, error) {
	return s.deps.ListAll(ctx)
}
