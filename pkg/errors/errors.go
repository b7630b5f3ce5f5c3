package errors

import (
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrNoToken      = NewAuthError("No Token", http.StatusUnauthorized)
	ErrInvalidToken = NewAuthError("Invalid Token", http.StatusUnauthorized)
	ErrForbidden    = NewAuthError("Forbidden Access", http.StatusForbidden)
)

// HTTPStatuser is implemented by errors that carry their transport status.
type HTTPStatuser interface {
	HTTPStatus() int
}

// AuthError represents an authentication or authorization denial. The
// message strings are part of the client contract and must not change.
type AuthError struct {
	Message string
	Status  int
}

// NewAuthError creates a new authentication/authorization error
func NewAuthError(message string, status int) *AuthError {
	return &AuthError{Message: message, Status: status}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message
}

// HTTPStatus returns the transport status for this error
func (e *AuthError) HTTPStatus() int {
	return e.Status
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the transport status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AlreadyExistsError represents a resource already exists error
type AlreadyExistsError struct {
	Resource string
	Message  string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, Message: message}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the transport status for this error
func (e *AlreadyExistsError) HTTPStatus() int {
	return http.StatusConflict
}

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the transport status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// StoreError represents a persistence-layer failure with context
type StoreError struct {
	Message string
	Err     error
}

// NewStoreError creates a new store error
func NewStoreError(message string, err error) *StoreError {
	return &StoreError{Message: message, Err: err}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the transport status for this error
func (e *StoreError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// StatusOf resolves the transport status for an error, defaulting to 500
// for errors that do not carry one.
func StatusOf(err error) int {
	if s, ok := err.(HTTPStatuser); ok {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}
