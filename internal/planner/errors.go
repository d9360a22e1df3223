package planner

import "errors"

// ErrNotFound reports an operation referencing a stale or deleted id, for
// example editing a meal that was removed in another tab. Callers must treat
// it as a no-op failure, never as a reason to create a replacement record.
var ErrNotFound = errors.New("not found")

// ValidationError reports rejected user input. No state mutation has occurred
// when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}
