package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ProfileIncompleteError represents a principal whose profile cannot be
// resolved to an organization. Every tenant-scoped endpoint maps it to 400.
type ProfileIncompleteError struct {
	Message string
}

func (e *ProfileIncompleteError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrProfileNotFound       = &NotFoundError{Entity: "profile"}
	ErrUploadSessionNotFound = &NotFoundError{Entity: "upload session"}
	ErrConfigurationNotFound = &NotFoundError{Entity: "configuration"}
)

// Authentication and Tenancy Errors
var (
	ErrAuthenticationRequired = &AuthenticationError{Message: "Authentication required"}
	ErrInvalidSessionToken    = &AuthenticationError{Message: "invalid session token"}
	ErrProfileIncomplete      = &ProfileIncompleteError{Message: "profile has no organization"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrEmptyUpload             = errors.New("uploaded file contains no claim rows")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsProfileIncomplete checks if an error is a ProfileIncompleteError
func IsProfileIncomplete(err error) bool {
	var incompleteErr *ProfileIncompleteError
	return errors.As(err, &incompleteErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
