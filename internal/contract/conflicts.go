package contract

// ResourceCalendar is the day-by-day owner concurrency census over a window.
// Days maps ISO date to owner to concurrent task count.
type ResourceCalendar struct {
	WindowStart string                    `json:"window_start"`
	WindowEnd   string                    `json:"window_end"`
	Days        map[string]map[string]int `json:"days"`
}

// ConflictReport is the outcome of a resource-conflict scan over the plan's
// full planned window. Calendar maps ISO date to owner to concurrent task
// count; Days lists, ascending, the dates where any owner exceeded the
// threshold.
type ConflictReport struct {
	Threshold   int                       `json:"threshold"`
	WindowStart string                    `json:"window_start"`
	WindowEnd   string                    `json:"window_end"`
	Days        []string                  `json:"days"`
	Calendar    map[string]map[string]int `json:"calendar"`
}
