package domain

import "fmt"

// ValidationError rejects an operation before any mutation is
// dispatched. It always leaves selection and clipboard state unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation error with a formatted reason
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
