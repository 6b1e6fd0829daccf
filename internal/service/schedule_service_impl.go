package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/contract"
	"github.com/rvannest/joist/internal/db"
	"github.com/rvannest/joist/internal/domain"
	"github.com/rvannest/joist/internal/repository"
	"github.com/rvannest/joist/internal/scheduler"
)

type scheduleService struct {
	uow         db.UnitOfWork
	tasks       repository.TaskRepo
	deps        repository.DependencyRepo
	assignments repository.AssignmentRepo
	now         func() time.Time
	observer    UseCaseObserver
}

func NewScheduleService(
	uow db.UnitOfWork,
	tasks repository.TaskRepo,
	deps repository.DependencyRepo,
	assignments repository.AssignmentRepo,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		uow:         uow,
		tasks:       tasks,
		deps:        deps,
		assignments: assignments,
		now:         func() time.Time { return time.Now().UTC() },
		observer:    useCaseObserverOrNoop(observers),
	}
}

// loadSnapshot reads the full plan into memory for one computation pass.
func (s *scheduleService) loadSnapshot(ctx context.Context) (*scheduler.Snapshot, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	edges, err := s.deps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dependencies: %w", err)
	}
	owners, err := s.assignments.OwnersByTask(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	return scheduler.NewSnapshot(tasks, edges, owners), nil
}

// persistDirty writes every mutated task back inside one transaction.
func (s *scheduleService) persistDirty(ctx context.Context, snap *scheduler.Snapshot) error {
	dirty := snap.DirtyTasks()
	if len(dirty) == 0 {
		return nil
	}
	now := s.now()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, t := range dirty {
			t.UpdatedAt = now
			if err := txTasks.Update(ctx, t); err != nil {
				return fmt.Errorf("updating task %q: %w", t.Code, err)
			}
		}
		return nil
	})
}

func (s *scheduleService) RollupAll(ctx context.Context) (changed bool, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "rollup-all",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"changed": changed},
		})
	}()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return false, err
	}
	changed = scheduler.RollupAll(snap)
	if err = s.persistDirty(ctx, snap); err != nil {
		return false, err
	}
	return changed, nil
}

func (s *scheduleService) Rollup(ctx context.Context, code string) (bool, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return false, err
	}
	if snap.Task(code) == nil {
		return false, fmt.Errorf("task %q: %w", code, domain.ErrNotFound)
	}
	changed := scheduler.RollupDates(snap, code, true)
	if scheduler.RollupProgress(snap, code, true) {
		changed = true
	}
	if err := s.persistDirty(ctx, snap); err != nil {
		return false, err
	}
	return changed, nil
}

func (s *scheduleService) CriticalPath(ctx context.Context) (*contract.CriticalPathResult, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	res := scheduler.CriticalPath(snap)

	out := &contract.CriticalPathResult{}
	if !res.ProjectEnd.IsZero() {
		out.ProjectEnd = domain.ISODate(res.ProjectEnd)
	}
	for _, t := range snap.Tasks {
		timing, ok := res.Timings[t.Code]
		if !ok {
			continue
		}
		out.Timings = append(out.Timings, contract.TaskTiming{
			Code:           t.Code,
			EarliestStart:  domain.ISODate(timing.EarliestStart),
			EarliestFinish: domain.ISODate(timing.EarliestFinish),
			LatestStart:    domain.ISODate(timing.LatestStart),
			LatestFinish:   domain.ISODate(timing.LatestFinish),
			SlackDays:      timing.SlackDays(),
			Critical:       res.Critical[t.Code],
		})
		if res.Critical[t.Code] {
			out.CriticalCodes = append(out.CriticalCodes, t.Code)
		}
	}
	return out, nil
}

// planWindow finds the span from the earliest planned start to the latest
// planned end across all tasks. Both returns are nil when nothing is dated.
func planWindow(snap *scheduler.Snapshot) (minStart, maxEnd *time.Time) {
	for _, t := range snap.Tasks {
		if !t.HasPlannedDates() {
			continue
		}
		if minStart == nil || t.PlannedStart.Before(*minStart) {
			minStart = t.PlannedStart
		}
		if maxEnd == nil || t.PlannedEnd.After(*maxEnd) {
			maxEnd = t.PlannedEnd
		}
	}
	return minStart, maxEnd
}

func (s *scheduleService) ResourceCalendar(ctx context.Context, from, to time.Time) (*contract.ResourceCalendar, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	// A zero window means the plan's full planned span.
	if from.IsZero() || to.IsZero() {
		minStart, maxEnd := planWindow(snap)
		if minStart == nil {
			return &contract.ResourceCalendar{Days: map[string]map[string]int{}}, nil
		}
		if from.IsZero() {
			from = *minStart
		}
		if to.IsZero() {
			to = *maxEnd
		}
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: window end before window start", domain.ErrValidation)
	}

	return &contract.ResourceCalendar{
		WindowStart: domain.ISODate(from),
		WindowEnd:   domain.ISODate(to),
		Days:        scheduler.Allocate(snap, from, to),
	}, nil
}

func (s *scheduleService) Conflicts(ctx context.Context, threshold int) (*contract.ConflictReport, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: threshold must be at least 1", domain.ErrValidation)
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	minStart, maxEnd := planWindow(snap)
	report := &contract.ConflictReport{Threshold: threshold}
	if minStart == nil {
		// Nothing scheduled yet.
		report.Calendar = map[string]map[string]int{}
		return report, nil
	}

	cal := scheduler.Allocate(snap, *minStart, *maxEnd)
	report.WindowStart = domain.ISODate(*minStart)
	report.WindowEnd = domain.ISODate(*maxEnd)
	report.Days = scheduler.IdentifyConflicts(cal, threshold)
	report.Calendar = cal
	return report, nil
}

func (s *scheduleService) Optimize(ctx context.Context) (result *contract.OptimizeResult, err error) {
	startedAt := s.now()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["cyclic"] = result.Cyclic
			fields["changed"] = len(result.Changes)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "optimize-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.Tasks) == 0 {
		return &contract.OptimizeResult{}, nil
	}

	outcome := scheduler.Optimize(snap, anchorCode(snap), s.now())
	scheduler.RollupAll(snap)

	if err = s.persistDirty(ctx, snap); err != nil {
		return nil, err
	}

	result = &contract.OptimizeResult{Cyclic: outcome.Cyclic}
	for _, c := range outcome.Changes {
		result.Changes = append(result.Changes, contract.TaskDates{
			Code:  c.Code,
			Start: domain.ISODate(c.Start),
			End:   domain.ISODate(c.End),
		})
	}
	return result, nil
}

// anchorCode picks the schedule's immovable origin: task "1" when present,
// otherwise the first root in tree order.
func anchorCode(snap *scheduler.Snapshot) string {
	if snap.Task("1") != nil {
		return "1"
	}
	roots := snap.Roots()
	if len(roots) == 0 {
		return ""
	}
	return roots[0].Code
}

func (s *scheduleService) Shift(ctx context.Context, code string, newStart time.Time) (result *contract.ShiftResult, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "shift-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task": code},
		})
	}()

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = scheduler.Shift(snap, code, newStart); err != nil {
		return nil, err
	}
	if err = s.persistDirty(ctx, snap); err != nil {
		return nil, err
	}
	return &contract.ShiftResult{Moved: movedTasks(snap)}, nil
}

func (s *scheduleService) SetDates(ctx context.Context, code string, start, end time.Time) (*contract.ShiftResult, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.SetDates(snap, code, start, end); err != nil {
		return nil, err
	}
	if err := s.persistDirty(ctx, snap); err != nil {
		return nil, err
	}
	return &contract.ShiftResult{Moved: movedTasks(snap)}, nil
}

func movedTasks(snap *scheduler.Snapshot) []contract.TaskDates {
	var moved []contract.TaskDates
	for _, t := range snap.DirtyTasks() {
		td := contract.TaskDates{Code: t.Code}
		if t.PlannedStart != nil {
			td.Start = domain.ISODate(*t.PlannedStart)
		}
		if t.PlannedEnd != nil {
			td.End = domain.ISODate(*t.PlannedEnd)
		}
		moved = append(moved, td)
	}
	return moved
}
