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

type assignmentService struct {
	tasks       repository.TaskRepo
	assignments repository.AssignmentRepo
}

func NewAssignmentService(tasks repository.TaskRepo, assignments repository.AssignmentRepo) AssignmentService {
	return &assignmentService{tasks: tasks, assignments: assignments}
}

func (s *assignmentService) Assign(ctx context.Context, taskCode, owner string) error {
	if strings.TrimSpace(owner) == "" {
		return fmt.Errorf("%w: owner name is required", domain.ErrValidation)
	}
	if _, err := s.tasks.GetByCode(ctx, taskCode); err != nil {
		return fmt.Errorf("task %q: %w", taskCode, err)
	}
	return s.assignments.Create(ctx, &domain.Assignment{
		ID:        uuid.New().String(),
		TaskCode:  taskCode,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *assignmentService) Unassign(ctx context.Context, taskCode, owner string) error {
	return s.assignments.Delete(ctx, taskCode, owner)
}

func (s *assignmentService) ListByTask(ctx context.Context, taskCode string) ([]domain.Assignment, error) {
	return s.assignments.ListByTask(ctx, taskCode)
}
