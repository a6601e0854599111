package apperrors

import (
	"fmt"
	"time"
)

// ValidationError indicates a malformed user-supplied parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// NewValidationError creates a validation error for a named parameter
func NewValidationError(param, reason string) *ValidationError {
	return &ValidationError{Param: param, Reason: reason}
}

// UnknownTimezoneError indicates a timezone identifier not present in the
// timezone database.
type UnknownTimezoneError struct {
	Timezone string
}

func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("unknown timezone: %q", e.Timezone)
}

// InvalidRangeError indicates a start instant after the end instant.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start date %s must not be after end date %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// PersistenceError wraps a storage-layer failure. The underlying error is
// preserved for logging; callers map it to a 5xx response.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
