package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCollection is returned for a collection name that is not part of the Document.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrEntityNotFound is returned when no entity has the requested id.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrDuplicateID is returned when a new entity reuses an existing id.
	ErrDuplicateID = errors.New("duplicate id")
)

// Error represents an edit that could not be turned into an action
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("edit error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("edit error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
