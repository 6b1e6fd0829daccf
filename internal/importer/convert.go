package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/rvannest/joist/internal/domain"
)

// GeneratedPlan holds converted domain objects ready for persistence.
type GeneratedPlan struct {
	Tasks        []*domain.Task
	Dependencies []domain.Dependency
	Assignments  []*domain.Assignment
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) *GeneratedPlan {
	now := time.Now().UTC()

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for _, t := range schema.Tasks {
		status := domain.StatusNotStarted
		if t.Status != "" {
			status = domain.TaskStatus(t.Status)
		}
		var pct float64
		if t.PercentComplete != nil {
			pct = *t.PercentComplete
		}

		var parent *string
		if t.ParentCode != nil && *t.ParentCode != "" {
			p := *t.ParentCode
			parent = &p
		}

		tasks = append(tasks, &domain.Task{
			ID:              uuid.New().String(),
			Code:            t.Code,
			Name:            t.Name,
			ParentCode:      parent,
			OrderIndex:      t.Order,
			PlannedStart:    parseOptionalDate(t.PlannedStart),
			PlannedEnd:      parseOptionalDate(t.PlannedEnd),
			ActualStart:     parseOptionalDate(t.ActualStart),
			ActualEnd:       parseOptionalDate(t.ActualEnd),
			DurationDays:    t.DurationDays,
			Status:          status,
			PercentComplete: pct,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	var deps []domain.Dependency
	for _, d := range schema.Dependencies {
		depType := domain.FinishToStart
		if d.Type != "" {
			depType = domain.DependencyType(d.Type)
		}
		var lag float64
		if d.LagDays != nil {
			lag = *d.LagDays
		}
		deps = append(deps, domain.Dependency{
			PredecessorCode: d.PredecessorCode,
			SuccessorCode:   d.SuccessorCode,
			Type:            depType,
			LagDays:         lag,
		})
	}

	var assignments []*domain.Assignment
	for _, a := range schema.Assignments {
		assignments = append(assignments, &domain.Assignment{
			ID:        uuid.New().String(),
			TaskCode:  a.TaskCode,
			Owner:     a.Owner,
			CreatedAt: now,
		})
	}

	return &GeneratedPlan{
		Tasks:        tasks,
		Dependencies: deps,
		Assignments:  assignments,
	}
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
