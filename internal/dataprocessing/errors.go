package dataprocessing

import (
	"errors"
	"fmt"
)

// Fatal precondition errors. Anything else the pipeline encounters is a
// per-cell or per-row defect and is resolved in place, never returned.
var (
	// ErrNoValidDates is returned when no row in the entire input carries a
	// parseable transaction date, leaving the imputation median undefined.
	ErrNoValidDates = errors.New("no valid transaction date in input, median undefined")

	// ErrMissingColumn is returned when a required column is absent after
	// header normalization. Wrapped with the column name by the normalizer.
	ErrMissingColumn = errors.New("required column missing")

	// ErrEmptyInput is returned when the input table has no data rows.
	ErrEmptyInput = errors.New("input table has no data rows")
)

// StageError wraps a fatal error with the pipeline stage that detected it.
type StageError struct {
	Stage string
	Cause error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e == nil {
		return "unknown pipeline error"
	}
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewStageError creates a StageError for the given stage and cause.
func NewStageError(stage string, cause error) *StageError {
	return &StageError{Stage: stage, Cause: cause}
}
