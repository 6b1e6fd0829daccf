package scheduler

import (
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// Shift translates a task and its whole subtree by the day delta between the
// task's current planned start and newStart, preserving every relative
// offset and duration. The shifted node's own end is reasserted from its
// original span afterwards so descendant-driven rollup cannot drift it, and
// all ancestors are rolled up.
func Shift(s *Snapshot, code string, newStart time.Time) (*domain.Task, error) {
	task := s.Task(code)
	if task == nil {
		return nil, fmt.Errorf("task %q: %w", code, domain.ErrNotFound)
	}
	if !task.HasPlannedDates() {
		return nil, fmt.Errorf("%w: task %q has no planned dates to shift", domain.ErrValidation, code)
	}

	newStart = domain.Midnight(newStart)
	delta := domain.DaysBetween(*task.PlannedStart, newStart)
	if delta == 0 {
		return task, nil
	}
	span := task.SpanDays()

	subtree := append([]*domain.Task{task}, s.Descendants(code)...)
	for _, t := range subtree {
		moved := false
		if t.PlannedStart != nil {
			v := t.PlannedStart.AddDate(0, 0, delta)
			t.PlannedStart = &v
			moved = true
		}
		if t.PlannedEnd != nil {
			v := t.PlannedEnd.AddDate(0, 0, delta)
			t.PlannedEnd = &v
			moved = true
		}
		if moved {
			s.MarkDirty(t.Code)
		}
	}

	// Reassert the shifted node's own span.
	end := task.PlannedStart.AddDate(0, 0, span)
	task.PlannedEnd = &end
	s.MarkDirty(code)

	rollupAncestors(s, code)
	return task, nil
}

// SetDates overwrites a single task's planned range. Descendants are left
// untouched; ancestors are rolled up.
func SetDates(s *Snapshot, code string, start, end time.Time) (*domain.Task, error) {
	task := s.Task(code)
	if task == nil {
		return nil, fmt.Errorf("task %q: %w", code, domain.ErrNotFound)
	}
	start = domain.Midnight(start)
	end = domain.Midnight(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s",
			domain.ErrValidation, domain.ISODate(end), domain.ISODate(start))
	}

	task.PlannedStart = &start
	task.PlannedEnd = &end
	s.MarkDirty(code)

	rollupAncestors(s, code)
	return task, nil
}

// rollupAncestors aggregates each ancestor from its direct children,
// nearest-first. The mutated subtree is already consistent, so this never
// descends back into it.
func rollupAncestors(s *Snapshot, code string) {
	for _, ancestor := range s.Ancestors(code) {
		aggregateDates(s, ancestor.Code)
		aggregateProgress(s, ancestor.Code)
	}
}
