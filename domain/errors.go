package domain

import "errors"

// Not-found and business-rule errors shared by repositories and services.
// Messages double as the HTTP response body, matching the API contract.
var (
	ErrUserNotFound      = errors.New("User not found")
	ErrTaskNotFound      = errors.New("Task not found")
	ErrCategoryNotFound  = errors.New("Category not found")
	ErrTagNotFound       = errors.New("Tag not found")
	ErrUserAlreadyExists = errors.New("User already exists")
	ErrCategoryHasTasks  = errors.New("Cannot delete category that has tasks assigned to it")
)

// ValidationError is returned by every value object constructor on invalid
// input, so callers can distinguish malformed values from infrastructure
// failures without matching on message strings.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
