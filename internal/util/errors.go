// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrMissingFields      = errors.New("missing required fields")
	ErrNoUpdateFields     = errors.New("no fields to update")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEntry     = errors.New("email already registered")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
