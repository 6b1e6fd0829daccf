package scheduler

import (
	"sort"
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// Calendar is a day-by-day census of owner concurrency:
// ISO date -> owner name -> number of concurrent tasks.
type Calendar map[string]map[string]int

// Allocate builds the concurrency calendar for every day in
// [minStart, maxEnd] inclusive. Only tasks with both planned dates and at
// least one owner participate; a task with N owners adds 1 to each of the N
// owners' counts on every day it spans (never split fractionally).
func Allocate(s *Snapshot, minStart, maxEnd time.Time) Calendar {
	cal := make(Calendar)
	first := domain.Midnight(minStart)
	last := domain.Midnight(maxEnd)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cal[domain.ISODate(d)] = make(map[string]int)
	}

	for _, task := range s.Tasks {
		if !task.HasPlannedDates() {
			continue
		}
		owners := s.Owners(task.Code)
		if len(owners) == 0 {
			continue
		}
		start := domain.Midnight(*task.PlannedStart)
		end := domain.Midnight(*task.PlannedEnd)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			day, ok := cal[domain.ISODate(d)]
			if !ok {
				continue // outside the requested window
			}
			for _, owner := range owners {
				day[owner]++
			}
		}
	}

	return cal
}

// IdentifyConflicts returns, sorted ascending, each ISO date on which any
// single owner's concurrent task count strictly exceeds the threshold.
func IdentifyConflicts(cal Calendar, threshold int) []string {
	var days []string
	for day, owners := range cal {
		for _, count := range owners {
			if count > threshold {
				days = append(days, day)
				break
			}
		}
	}
	sort.Strings(days)
	return days
}
