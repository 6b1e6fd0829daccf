package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	if t.ParentCode != nil {
		if _, err := s.tasks.GetByCode(ctx, *t.ParentCode); err != nil {
			return fmt.Errorf("parent %q: %w", *t.ParentCode, err)
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.StatusNotStarted
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByCode(ctx context.Context, code string) (*domain.Task, error) {
	return s.tasks.GetByCode(ctx, code)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.ListAll(ctx)
}

func (s *taskService) ListRoots(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.ListRoots(ctx)
}

func (s *taskService) ListChildren(ctx context.Context, parentCode string) ([]*domain.Task, error) {
	return s.tasks.ListChildren(ctx, parentCode)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, code string) error {
	return s.tasks.Delete(ctx, code)
}

func validateTask(t *domain.Task) error {
	if strings.TrimSpace(t.Code) == "" {
		return fmt.Errorf("%w: task code is required", domain.ErrValidation)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: task name is required", domain.ErrValidation)
	}
	if t.Status != "" {
		if _, err := domain.ParseTaskStatus(string(t.Status)); err != nil {
			return err
		}
	}
	if t.HasPlannedDates() && t.PlannedEnd.Before(*t.PlannedStart) {
		return fmt.Errorf("%w: planned end before planned start", domain.ErrValidation)
	}
	if t.PercentComplete < 0 || t.PercentComplete > 100 {
		return fmt.Errorf("%w: percent complete must be within [0, 100]", domain.ErrValidation)
	}
	if t.DurationDays != nil && *t.DurationDays < 0 {
		return fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	return nil
}
