package repository

import (
	"context"

	"github.com/rvannest/joist/internal/domain"
)

// TaskRepo is the task-tree store contract. Listings come back in stable
// tree order (dotted-decimal code order); ancestors are nearest-first.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByCode(ctx context.Context, code string) (*domain.Task, error)
	ListAll(ctx context.Context) ([]*domain.Task, error)
	ListRoots(ctx context.Context) ([]*domain.Task, error)
	ListChildren(ctx context.Context, parentCode string) ([]*domain.Task, error)
	ListAncestors(ctx context.Context, code string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, code string) error
}

// DependencyRepo is the dependency-edge store contract. The scheduling core
// only ever reads edges; create/delete serve import and the CLI.
type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	Delete(ctx context.Context, predecessorCode, successorCode string) error
	ListByPredecessor(ctx context.Context, code string) ([]domain.Dependency, error)
	ListBySuccessor(ctx context.Context, code string) ([]domain.Dependency, error)
	ListAll(ctx context.Context) ([]domain.Dependency, error)
}

// AssignmentRepo stores owner links used by resource allocation.
type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, taskCode, owner string) error
	ListByTask(ctx context.Context, taskCode string) ([]domain.Assignment, error)
	OwnersByTask(ctx context.Context) (map[string][]string, error)
}
