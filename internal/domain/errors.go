package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrTaskNotFound     = errors.New("task not found")
)

// RemoteError is a failure response from the remote service. Message is the
// human-readable text from the service's error payload; it is empty when the
// body could not be read or parsed.
type RemoteError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote service returned status %d", e.StatusCode)
}

// IsUnauthorized returns true if the service rejected the credential.
func (e *RemoteError) IsUnauthorized() bool {
	return e.StatusCode == 401
}
