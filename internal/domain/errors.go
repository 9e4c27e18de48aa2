package domain

import "fmt"

// ValidationError is returned by domain rules for input they reject. The
// HTTP edge maps it to a validation response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
