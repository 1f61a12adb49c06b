package commands

import "fmt"

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage.
type UserError struct {
	Message string

	// Pending marks a refusal from an interaction that is not built yet
	// (give, open, use) as opposed to one that can never succeed.
	Pending bool
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// NewUserErrorf creates a user-facing error from a format string.
func NewUserErrorf(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// NewPendingError creates the fixed refusal of a placeholder interaction.
func NewPendingError(msg string) *UserError {
	return &UserError{Message: msg, Pending: true}
}
