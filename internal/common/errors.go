// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrStorageOpen  = errors.New("failed to open storage")
	ErrStorageWrite = errors.New("failed to write storage")

	// Domain errors.
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrTypeMismatch    = errors.New("transaction type does not match category type")
	ErrInvalidParent   = errors.New("invalid parent category")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownMethod   = errors.New("unknown payment method")
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
