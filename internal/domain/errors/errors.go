// Package errors defines the application error taxonomy shared by every
// service method and the HTTP error middleware.
package errors

import (
	"net/http"

	"backlot/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidation covers malformed event descriptors and preference
	// updates; surfaced synchronously to the caller.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// ErrNotFound covers missing records. Dispatch paths never surface it:
	// missing preferences fall back to lazily-created defaults and missing
	// rules produce a zero-recipient result.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// ErrPermission covers operations that cross a tenant or ownership
	// boundary; the operation is aborted.
	ErrPermission = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Access to this resource is denied",
		"",
	)

	// ErrProviderFailure covers transient channel-provider failures. Retried
	// up to the provider cap and never surfaced to the event producer.
	ErrProviderFailure = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_FAILURE",
		"Channel provider call failed",
		"",
	)

	// ErrRateLimited is a soft block: the delivery is suppressed and logged,
	// not treated as a failure.
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMIT_EXCEEDED",
		"Notification rate limit exceeded",
		"",
	)

	// ErrArchival is isolated to the retention job; it never affects
	// foreground notification traffic.
	ErrArchival = NewBaseError(
		http.StatusInternalServerError,
		"ARCHIVAL_FAILED",
		"Archival job failed",
		"",
	)

	// ErrConflict covers rows that already exist.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	// ErrInternal is the catch-all for unexpected failures.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
