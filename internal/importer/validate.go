package importer

import (
	"fmt"
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found. Dependency cycles are not
// an error here; the schedule optimizer detects them and degrades instead of
// refusing the data.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	codes := make(map[string]bool)
	errs = append(errs, validateTasks(schema.Tasks, codes)...)
	errs = append(errs, validateDependencies(schema.Dependencies, codes)...)
	errs = append(errs, validateAssignments(schema.Assignments, codes)...)

	return errs
}

func validateTasks(tasks []TaskImport, codes map[string]bool) []error {
	var errs []error

	if len(tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		} else if codes[t.Code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate code %q", prefix, t.Code))
		} else {
			codes[t.Code] = true
		}

		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		if t.ParentCode != nil && *t.ParentCode != "" && !codes[*t.ParentCode] {
			errs = append(errs, fmt.Errorf("%s.parent_code: code %q not found (must appear earlier in tasks list)", prefix, *t.ParentCode))
		}

		if t.Status != "" {
			if _, err := domain.ParseTaskStatus(t.Status); err != nil {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
			}
		}
		if t.DurationDays != nil && *t.DurationDays < 0 {
			errs = append(errs, fmt.Errorf("%s.duration_days must not be negative", prefix))
		}
		if t.PercentComplete != nil && (*t.PercentComplete < 0 || *t.PercentComplete > 100) {
			errs = append(errs, fmt.Errorf("%s.percent_complete must be within [0, 100]", prefix))
		}

		errs = append(errs, validateOptionalDate(prefix+".planned_start", t.PlannedStart)...)
		errs = append(errs, validateOptionalDate(prefix+".planned_end", t.PlannedEnd)...)
		errs = append(errs, validateOptionalDate(prefix+".actual_start", t.ActualStart)...)
		errs = append(errs, validateOptionalDate(prefix+".actual_end", t.ActualEnd)...)

		if t.PlannedStart != nil && t.PlannedEnd != nil {
			start, startErr := time.Parse(domain.DateLayout, *t.PlannedStart)
			end, endErr := time.Parse(domain.DateLayout, *t.PlannedEnd)
			if startErr == nil && endErr == nil && end.Before(start) {
				errs = append(errs, fmt.Errorf("%s: planned_end %q before planned_start %q", prefix, *t.PlannedEnd, *t.PlannedStart))
			}
		}
	}

	return errs
}

func validateDependencies(deps []DependencyImport, codes map[string]bool) []error {
	var errs []error

	seen := make(map[[2]string]bool)
	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)

		if d.PredecessorCode == "" {
			errs = append(errs, fmt.Errorf("%s.predecessor_code is required", prefix))
		} else if !codes[d.PredecessorCode] {
			errs = append(errs, fmt.Errorf("%s.predecessor_code: code %q not found in tasks", prefix, d.PredecessorCode))
		}

		if d.SuccessorCode == "" {
			errs = append(errs, fmt.Errorf("%s.successor_code is required", prefix))
		} else if !codes[d.SuccessorCode] {
			errs = append(errs, fmt.Errorf("%s.successor_code: code %q not found in tasks", prefix, d.SuccessorCode))
		}

		if d.PredecessorCode != "" && d.PredecessorCode == d.SuccessorCode {
			errs = append(errs, fmt.Errorf("%s: self-dependency (predecessor_code == successor_code == %q)", prefix, d.PredecessorCode))
		}

		pair := [2]string{d.PredecessorCode, d.SuccessorCode}
		if seen[pair] {
			errs = append(errs, fmt.Errorf("%s: duplicate edge %q -> %q", prefix, d.PredecessorCode, d.SuccessorCode))
		}
		seen[pair] = true

		if d.Type != "" {
			if _, err := domain.ParseDependencyType(d.Type); err != nil {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, d.Type))
			}
		}
	}

	return errs
}

func validateAssignments(assignments []AssignmentImport, codes map[string]bool) []error {
	var errs []error

	seen := make(map[[2]string]bool)
	for i, a := range assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)

		if a.TaskCode == "" {
			errs = append(errs, fmt.Errorf("%s.task_code is required", prefix))
		} else if !codes[a.TaskCode] {
			errs = append(errs, fmt.Errorf("%s.task_code: code %q not found in tasks", prefix, a.TaskCode))
		}
		if a.Owner == "" {
			errs = append(errs, fmt.Errorf("%s.owner is required", prefix))
		}

		pair := [2]string{a.TaskCode, a.Owner}
		if seen[pair] {
			errs = append(errs, fmt.Errorf("%s: duplicate assignment of %q to %q", prefix, a.Owner, a.TaskCode))
		}
		seen[pair] = true
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
