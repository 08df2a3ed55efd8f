package engine

import "fmt"

// ValidationError indicates an input record or parameter failed validation
// before any scoring began. It is surfaced to the caller, never recovered
// internally.
type ValidationError struct {
	Record  string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("validation error in %s: %v", e.Record, e.Cause)
	case e.Record != "":
		return fmt.Sprintf("validation error in %s: %s", e.Record, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
