// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Save failure taxonomy. Each save error wraps exactly one of these.
var (
	// ErrValidation covers blank, non-numeric and non-positive amounts.
	ErrValidation = errors.New("validation failed")
	// ErrConfiguration means no storage folder has been configured.
	ErrConfiguration = errors.New("folder not configured")
	// ErrStorageUnavailable means the configured folder is missing or inaccessible.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrFileCreation means the storage collaborator returned no file.
	ErrFileCreation = errors.New("file creation failed")
	// ErrWrite means writing the record bytes failed.
	ErrWrite = errors.New("write failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message meant for the user, falling back to the
// error text when err carries no UserError.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
