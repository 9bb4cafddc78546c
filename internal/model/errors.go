package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Roster errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrPlayerExists    = errors.New("player with this id already exists")

	// Storage errors
	ErrRosterNotFound   = errors.New("no roster stored")
	ErrUsernameNotFound = errors.New("no username stored")

	// ErrRevisionConflict is returned by the remote document medium when
	// a write's revision token is stale. Callers may reload and retry;
	// no retry happens at the storage layer.
	ErrRevisionConflict = errors.New("stale revision token")
)

// ValidationError reports a required field missing at submission.
// No mutation occurs and nothing is persisted when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
