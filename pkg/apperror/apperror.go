// Package apperror holds the error taxonomy shared by the stores, the player
// entry flow and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

// Code classifies an AppError.
type Code string

const (
	CodeConflict Code = "conflict"
	CodeNotFound Code = "not_found"
	CodeStorage  Code = "storage"
)

// AppError is a domain or storage failure whose Message is safe to show to a user.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Conflict reports that the operation clashes with existing state.
func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NotFound reports a missing group or player.
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// Storage wraps a persistence fault. The cause is kept for logging only.
func Storage(message string, err error) *AppError {
	return &AppError{Code: CodeStorage, Message: message, Err: err}
}

// ValidationError rejects user input before any side effect happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvariantViolation marks a state that should be unreachable, e.g. a team
// list without an active team.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Message
}

func Invariant(format string, args ...any) *InvariantViolation {
	return &InvariantViolation{Message: fmt.Sprintf(format, args...)}
}

// UnknownError wraps anything outside the taxonomy.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return "unknown error: " + e.Err.Error()
}

func (e *UnknownError) Unwrap() error { return e.Err }

// AsAppError is a shorthand for errors.As with *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// AsValidation is a shorthand for errors.As with *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// IsInvariant reports whether err carries an *InvariantViolation.
func IsInvariant(err error) bool {
	var inv *InvariantViolation
	return errors.As(err, &inv)
}
