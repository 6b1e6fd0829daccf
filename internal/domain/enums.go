package domain

import "fmt"

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "done": true, "blocked": true,
}

// ParseTaskStatus converts a string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	if !ValidTaskStatuses[s] {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return TaskStatus(s), nil
}

// DependencyType is the relationship between a predecessor and successor.
type DependencyType string

const (
	FinishToStart  DependencyType = "FS"
	StartToStart   DependencyType = "SS"
	FinishToFinish DependencyType = "FF"
	StartToFinish  DependencyType = "SF"
)

// ValidDependencyTypes is the canonical set of accepted dependency types.
var ValidDependencyTypes = map[string]bool{
	"FS": true, "SS": true, "FF": true, "SF": true,
}

// ParseDependencyType converts a string into a DependencyType.
func ParseDependencyType(s string) (DependencyType, error) {
	if !ValidDependencyTypes[s] {
		return "", fmt.Errorf("%w: unknown dependency type %q", ErrValidation, s)
	}
	return DependencyType(s), nil
}

// AnchorsOnEnd reports whether the type anchors a successor on the
// predecessor's planned end (FS, FF) rather than its planned start (SS, SF).
func (d DependencyType) AnchorsOnEnd() bool {
	return d == FinishToStart || d == FinishToFinish
}
