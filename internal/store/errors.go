package store

import "fmt"

// DecodeError represents an action envelope or payload that could not be decoded
type DecodeError struct {
	Tag     string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	prefix := "action decode error"
	if e.Tag != "" {
		prefix = fmt.Sprintf("action decode error (%s)", e.Tag)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
