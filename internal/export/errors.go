package export

import (
	"errors"
	"fmt"
)

var (
	// ErrInProgress is returned when an export is started while another one is running.
	ErrInProgress = errors.New("export already in progress")
	// ErrTargetNotFound is returned when the rendered page has no export target element.
	ErrTargetNotFound = errors.New("export target not found")
)

// Error represents a failed export
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
