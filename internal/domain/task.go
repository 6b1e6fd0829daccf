package domain

import "time"

// Task is a single node in the work-breakdown tree. Code is the external
// identifier (dotted-decimal, e.g. "1.2.3"); ParentCode is nil for roots.
type Task struct {
	ID              string
	Code            string
	Name            string
	ParentCode      *string
	OrderIndex      int
	PlannedStart    *time.Time
	PlannedEnd      *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
	DurationDays    *float64
	Status          TaskStatus
	PercentComplete float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPlannedDates reports whether both planned dates are set.
func (t *Task) HasPlannedDates() bool {
	return t.PlannedStart != nil && t.PlannedEnd != nil
}

// EffectiveDurationDays returns the stored duration when present, otherwise
// the inclusive day count derived from the planned dates, otherwise 0.
func (t *Task) EffectiveDurationDays() float64 {
	if t.DurationDays != nil {
		return *t.DurationDays
	}
	if t.HasPlannedDates() {
		return float64(DaysBetween(*t.PlannedStart, *t.PlannedEnd) + 1)
	}
	return 0
}

// SpanDays returns the exclusive day count between the planned dates
// (end minus start), or 0 when either date is missing. This is the span the
// optimizer preserves when it moves a task.
func (t *Task) SpanDays() int {
	if !t.HasPlannedDates() {
		return 0
	}
	return DaysBetween(*t.PlannedStart, *t.PlannedEnd)
}
