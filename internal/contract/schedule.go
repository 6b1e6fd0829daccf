package contract

// TaskTiming carries one task's critical-path annotations with dates
// rendered as ISO strings (YYYY-MM-DD) for display and JSON output.
type TaskTiming struct {
	Code           string  `json:"code"`
	EarliestStart  string  `json:"earliest_start"`
	EarliestFinish string  `json:"earliest_finish"`
	LatestStart    string  `json:"latest_start"`
	LatestFinish   string  `json:"latest_finish"`
	SlackDays      float64 `json:"slack_days"`
	Critical       bool    `json:"critical"`
}

// CriticalPathResult is the outcome of a critical-path computation.
// Timings follow tree order; tasks without planned dates are absent.
type CriticalPathResult struct {
	ProjectEnd    string       `json:"project_end"`
	Timings       []TaskTiming `json:"timings"`
	CriticalCodes []string     `json:"critical_codes"`
}

// TaskDates records one task's resulting planned range after a mutation.
type TaskDates struct {
	Code  string `json:"code"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ShiftResult reports every task a shift or set-dates call touched,
// in tree order: the target, moved descendants, and rolled-up ancestors.
type ShiftResult struct {
	Moved []TaskDates `json:"moved"`
}

// OptimizeResult reports a schedule optimization pass. Cyclic means the
// dependency graph was not a DAG and the pass fell back to stored order.
type OptimizeResult struct {
	Cyclic  bool        `json:"cyclic"`
	Changes []TaskDates `json:"changes"`
}
