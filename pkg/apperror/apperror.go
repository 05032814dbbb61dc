// Package apperror defines the application error types shared by all
// services and handlers. Every fallible operation returns one of these
// so callers can map failures to HTTP status codes without inspecting
// driver-level errors.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unclassified failures
	UnknownError ErrorType = iota
	// DatabaseError represents a failure inside the relational store
	DatabaseError
	// AuthError represents an authentication failure (invalid credentials, bad token)
	AuthError
	// UnauthorizedError represents an authorization failure (valid identity, no permission)
	UnauthorizedError
	// NotFoundError represents a missing entity
	NotFoundError
	// ValidationError represents invalid input or a broken reference on write
	ValidationError
	// ConflictError represents a uniqueness conflict, e.g. a username already taken
	ConflictError
	// InternalError represents a generic internal failure
	InternalError
)

// AppError carries a classified, user-facing error plus the underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case UnauthorizedError:
		// 401 is "not authenticated", 403 is "authenticated but not allowed"
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case DatabaseError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError with an explicit type.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewDatabaseError creates a DatabaseError
func NewDatabaseError(message string, underlying error) *AppError {
	return New(DatabaseError, message, underlying)
}

// NewAuthError creates an AuthError
func NewAuthError(message string, underlying error) *AppError {
	return New(AuthError, message, underlying)
}

// NewUnauthorizedError creates an UnauthorizedError
func NewUnauthorizedError(message string, underlying error) *AppError {
	return New(UnauthorizedError, message, underlying)
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError
func NewValidationError(message string, underlying error) *AppError {
	return New(ValidationError, message, underlying)
}

// NewConflictError creates a ConflictError
func NewConflictError(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

// NewInternalError creates an InternalError
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// ErrorBody is the inner payload of an error response.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the JSON shape every error reaches the client in:
// {"error": {"message": ..., "status": ...}}
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ToResponse converts the error into its wire representation. Only the
// user-facing message is exposed, never the underlying cause.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: e.Message, Status: e.StatusCode()}}
}

// FromError extracts an *AppError from an error chain.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError reports whether err is an AuthError
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsUnauthorized reports whether err is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == UnauthorizedError
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
