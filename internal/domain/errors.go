package domain

import "errors"

var (
	// ErrNotFound marks a lookup for a task code that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks semantically invalid caller input.
	ErrValidation = errors.New("validation failed")
)
