package scheduler

import (
	"math"
	"time"
)

// RollupDates recomputes a node's planned range from its direct children,
// visiting every descendant first (post-order) so each child has already
// absorbed its own subtree before the parent aggregates. Children carrying
// only one of the two dates contribute only that side. A node with no
// children never changes. The return value reports whether this node's own
// stored pair changed, and only when includeSelf is set.
func RollupDates(s *Snapshot, code string, includeSelf bool) bool {
	task := s.Task(code)
	if task == nil {
		return false
	}
	for _, c := range s.Children(code) {
		RollupDates(s, c.Code, true)
	}
	return aggregateDates(s, code) && includeSelf
}

// aggregateDates recomputes one node's range from its direct children only.
// Used by the post-order recursion and by upward ancestor walks, where the
// children are already current and descending again would undo a shifted
// node's reasserted end.
func aggregateDates(s *Snapshot, code string) bool {
	task := s.Task(code)
	children := s.Children(code)
	if task == nil || len(children) == 0 {
		return false
	}

	var minStart, maxEnd *time.Time
	for _, c := range children {
		if c.PlannedStart != nil && (minStart == nil || c.PlannedStart.Before(*minStart)) {
			minStart = c.PlannedStart
		}
		if c.PlannedEnd != nil && (maxEnd == nil || c.PlannedEnd.After(*maxEnd)) {
			maxEnd = c.PlannedEnd
		}
	}
	if minStart == nil && maxEnd == nil {
		return false // no dated children, nothing to aggregate
	}

	changed := false
	if minStart != nil && !equalDate(task.PlannedStart, minStart) {
		v := *minStart
		task.PlannedStart = &v
		changed = true
	}
	if maxEnd != nil && !equalDate(task.PlannedEnd, maxEnd) {
		v := *maxEnd
		task.PlannedEnd = &v
		changed = true
	}
	if changed {
		s.MarkDirty(code)
	}
	return changed
}

// RollupProgress recomputes a node's percent-complete as the
// duration-weighted average of its direct children (post-order). A child
// with no usable duration weighs 1 so undated tasks still count. Leaves keep
// their operator-entered values. Result is rounded to 2 decimal places.
func RollupProgress(s *Snapshot, code string, includeSelf bool) bool {
	task := s.Task(code)
	if task == nil {
		return false
	}
	for _, c := range s.Children(code) {
		RollupProgress(s, c.Code, true)
	}
	return aggregateProgress(s, code) && includeSelf
}

// aggregateProgress is the single-node counterpart of aggregateDates.
func aggregateProgress(s *Snapshot, code string) bool {
	task := s.Task(code)
	children := s.Children(code)
	if task == nil || len(children) == 0 {
		return false
	}

	var weighted, weightSum float64
	for _, c := range children {
		w := c.EffectiveDurationDays()
		if w == 0 {
			w = 1
		}
		weighted += c.PercentComplete * w
		weightSum += w
	}

	avg := math.Round(weighted/weightSum*100) / 100
	if task.PercentComplete == avg {
		return false
	}
	task.PercentComplete = avg
	s.MarkDirty(code)
	return true
}

// RollupAll runs both rollups from every root. Reports whether any root's
// own aggregation changed.
func RollupAll(s *Snapshot) bool {
	changed := false
	for _, root := range s.Roots() {
		if RollupDates(s, root.Code, true) {
			changed = true
		}
		if RollupProgress(s, root.Code, true) {
			changed = true
		}
	}
	return changed
}

func equalDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
