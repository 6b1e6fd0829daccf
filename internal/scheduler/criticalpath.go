package scheduler

import (
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// Timing holds the derived CPM annotations for one task.
type Timing struct {
	EarliestStart  time.Time
	EarliestFinish time.Time
	LatestStart    time.Time
	LatestFinish   time.Time
}

// SlackDays is the float between latest and earliest start; zero marks
// critical-path membership.
func (t Timing) SlackDays() float64 {
	return t.LatestStart.Sub(t.EarliestStart).Hours() / 24
}

// CPMResult is the outcome of a critical-path computation. Tasks without
// both planned dates carry no Timing entry.
type CPMResult struct {
	Timings    map[string]Timing
	ProjectEnd time.Time
	Critical   map[string]bool
}

// CriticalPath runs the two-pass CPM over the snapshot's tasks in their
// given tree order. Tasks lacking planned dates are skipped, and a
// predecessor whose earliest finish is not yet known falls back to the
// task's own planned start (the supplied order is tree order, not
// topological order, so such lookups are expected).
//
// Every edge is treated as an FS-equivalent constraint here: the pass
// anchors on predecessor EF / successor LS regardless of the declared
// SS/FF/SF type. Optimize honours per-type anchors; this pass keeps the
// simpler behavior so the highlighted path stays stable for existing data.
func CriticalPath(s *Snapshot) CPMResult {
	res := CPMResult{
		Timings:  make(map[string]Timing),
		Critical: make(map[string]bool),
	}

	type forward struct {
		es, ef time.Time
	}
	fwd := make(map[string]forward)

	var computed []*domain.Task
	for _, task := range s.Tasks {
		if !task.HasPlannedDates() {
			continue
		}
		dur := float64(domain.DaysBetween(*task.PlannedStart, *task.PlannedEnd) + 1)

		es := *task.PlannedStart
		found := false
		for _, e := range s.Predecessors(task.Code) {
			pf, ok := fwd[e.PredecessorCode]
			if !ok {
				continue
			}
			candidate := domain.AddDays(pf.ef, e.LagDays)
			if !found || candidate.After(es) {
				es = candidate
				found = true
			}
		}

		ef := domain.AddDays(es, dur-1)
		fwd[task.Code] = forward{es: es, ef: ef}
		computed = append(computed, task)

		if ef.After(res.ProjectEnd) {
			res.ProjectEnd = ef
		}
	}

	type backward struct {
		ls, lf time.Time
	}
	bwd := make(map[string]backward)

	for i := len(computed) - 1; i >= 0; i-- {
		task := computed[i]
		dur := float64(domain.DaysBetween(*task.PlannedStart, *task.PlannedEnd) + 1)

		lf := res.ProjectEnd
		found := false
		for _, e := range s.Successors(task.Code) {
			sb, ok := bwd[e.SuccessorCode]
			if !ok {
				continue
			}
			candidate := domain.AddDays(sb.ls, -e.LagDays)
			if !found || candidate.Before(lf) {
				lf = candidate
				found = true
			}
		}

		ls := domain.AddDays(lf, -(dur - 1))
		bwd[task.Code] = backward{ls: ls, lf: lf}

		f := fwd[task.Code]
		res.Timings[task.Code] = Timing{
			EarliestStart:  f.es,
			EarliestFinish: f.ef,
			LatestStart:    ls,
			LatestFinish:   lf,
		}
		if f.es.Equal(ls) {
			res.Critical[task.Code] = true
		}
	}

	return res
}
