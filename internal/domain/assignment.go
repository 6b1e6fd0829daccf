package domain

import "time"

// Assignment links an owner (a crew member's display name) to a task.
// A task may carry zero, one, or many assignments; owners feed the
// resource-allocation calendar.
type Assignment struct {
	ID        string
	TaskCode  string
	Owner     string
	CreatedAt time.Time
}
