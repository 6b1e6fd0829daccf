package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for plan import.
type ImportSchema struct {
	Tasks        []TaskImport       `json:"tasks"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
	Assignments  []AssignmentImport `json:"assignments,omitempty"`
}

// TaskImport defines one task in the import file. Code doubles as the
// external reference other entries point at; parents must appear earlier in
// the list than their children.
type TaskImport struct {
	Code            string   `json:"code"`
	ParentCode      *string  `json:"parent_code,omitempty"`
	Name            string   `json:"name"`
	Order           int      `json:"order,omitempty"`
	PlannedStart    *string  `json:"planned_start,omitempty"`
	PlannedEnd      *string  `json:"planned_end,omitempty"`
	ActualStart     *string  `json:"actual_start,omitempty"`
	ActualEnd       *string  `json:"actual_end,omitempty"`
	DurationDays    *float64 `json:"duration_days,omitempty"`
	Status          string   `json:"status,omitempty"`
	PercentComplete *float64 `json:"percent_complete,omitempty"`
}

// DependencyImport defines a dependency between two tasks.
type DependencyImport struct {
	PredecessorCode string   `json:"predecessor_code"`
	SuccessorCode   string   `json:"successor_code"`
	Type            string   `json:"type,omitempty"`
	LagDays         *float64 `json:"lag_days,omitempty"`
}

// AssignmentImport links an owner to a task.
type AssignmentImport struct {
	TaskCode string `json:"task_code"`
	Owner    string `json:"owner"`
}

// LoadImportSchema reads and parses a plan import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
