package scheduler

import (
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// TaskDates records one rescheduled task.
type TaskDates struct {
	Code  string
	Start time.Time
	End   time.Time
}

// OptimizeOutcome reports what an optimizer pass did. Cyclic means the edge
// set is not a DAG and the pass degraded to insertion order; the data should
// be fixed but the request did not fail.
type OptimizeOutcome struct {
	Cyclic  bool
	Changes []TaskDates
}

// TopoOrder orders task codes with Kahn's algorithm (in-degree = count of
// predecessor edges whose endpoints both exist). The second return value is
// true when a cycle prevented a complete ordering.
func TopoOrder(s *Snapshot) ([]string, bool) {
	indeg := make(map[string]int, len(s.Tasks))
	for _, t := range s.Tasks {
		indeg[t.Code] = 0
	}
	for _, t := range s.Tasks {
		for _, e := range s.Predecessors(t.Code) {
			if s.Task(e.PredecessorCode) != nil {
				indeg[t.Code]++
			}
		}
	}

	var queue []string
	for _, t := range s.Tasks {
		if indeg[t.Code] == 0 {
			queue = append(queue, t.Code)
		}
	}

	var order []string
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		order = append(order, code)
		for _, e := range s.Successors(code) {
			succ := e.SuccessorCode
			if _, ok := indeg[succ]; !ok {
				continue
			}
			indeg[succ]--
			if indeg[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	return order, len(order) < len(s.Tasks)
}

// Optimize recomputes each task's earliest feasible start (ASAP forward
// pass) honouring per-edge dependency type and lag plus parent containment.
// The anchor task is never rescheduled; it is the schedule's origin.
// FS/FF edges anchor on the predecessor's planned end, SS/SF on its planned
// start, each advanced by the edge's lag. The anchor root's start is applied
// as a floor only for tasks without predecessors. A task with no constraint
// at all falls back to the supplied processing day. Durations (end minus
// start) are preserved. Mutated tasks are marked dirty; the caller persists
// them and re-runs the rollup from every root.
func Optimize(s *Snapshot, anchorCode string, today time.Time) OptimizeOutcome {
	order, cyclic := TopoOrder(s)
	if cyclic {
		order = order[:0]
		for _, t := range s.Tasks {
			order = append(order, t.Code)
		}
	}

	outcome := OptimizeOutcome{Cyclic: cyclic}
	anchor := s.Task(anchorCode)

	for _, code := range order {
		if code == anchorCode {
			continue
		}
		task := s.Task(code)
		if task == nil {
			continue
		}
		span := task.SpanDays()

		var earliest *time.Time
		for _, e := range s.Predecessors(code) {
			pred := s.Task(e.PredecessorCode)
			if pred == nil {
				continue
			}
			var at *time.Time
			if e.Type.AnchorsOnEnd() {
				at = pred.PlannedEnd
			} else {
				at = pred.PlannedStart
			}
			if at == nil {
				continue
			}
			candidate := domain.AddDays(*at, e.LagDays)
			if earliest == nil || candidate.After(*earliest) {
				earliest = &candidate
			}
		}

		// Parent containment only raises the floor.
		if task.ParentCode != nil {
			if parent := s.Task(*task.ParentCode); parent != nil && parent.PlannedStart != nil {
				if earliest == nil || parent.PlannedStart.After(*earliest) {
					earliest = parent.PlannedStart
				}
			}
		}

		// The root's start is a floor only for tasks without predecessors.
		if len(s.Predecessors(code)) == 0 && anchor != nil && anchor.PlannedStart != nil {
			if earliest == nil || anchor.PlannedStart.After(*earliest) {
				earliest = anchor.PlannedStart
			}
		}

		if earliest == nil {
			fallback := domain.Midnight(today)
			earliest = &fallback
		}

		start := *earliest
		end := domain.AddDays(start, float64(span))
		if task.PlannedStart != nil && start.Equal(*task.PlannedStart) &&
			task.PlannedEnd != nil && end.Equal(*task.PlannedEnd) {
			continue
		}

		task.PlannedStart = &start
		task.PlannedEnd = &end
		s.MarkDirty(code)
		outcome.Changes = append(outcome.Changes, TaskDates{Code: code, Start: start, End: end})
	}

	return outcome
}
