package models

import "errors"

// ErrTaskNotFound marks a lookup that matched no task. It is a logical
// signal, not a failure: API surfaces translate it to a null result,
// a 404, or false, never to a server error.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports malformed or missing required input, such as
// an empty title on create.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
