package console

import "fmt"

// ValidationError is a recoverable, user-facing error raised by a command
// handler for malformed input or missing preconditions. The dispatcher
// recovers exactly this kind at the loop boundary, printing its message as a
// single output line; every other error kind propagates and ends the loop.
type ValidationError struct {
	Message string
}

// Error returns the user-facing message verbatim.
func (e *ValidationError) Error() string {
	return e.Message
}

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
