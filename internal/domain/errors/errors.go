// Package errors defines the application-level error taxonomy. Every error
// that crosses the delivery boundary is one of these; raw storage errors
// never reach the transport layer.
package errors

import (
	"net/http"

	"usersvc/internal/errors"
)

// AppError is the contract between the application layers and the HTTP
// error handler. Details carries optional machine-readable context, such as
// field-level validation failures.
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	Message() string // Stable, backend-agnostic message for the response body
	Details() any    // Optional machine-readable details, nil when absent
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode int
	message  string
	details  any
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, message string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		message:  message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Message returns the stable response message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns the optional machine-readable details.
func (e *BaseError) Details() any {
	return e.details
}

// Predefined error types
var (
	// ErrEmailTaken maps the storage layer's uniqueness violation on email
	// to a stable conflict response. The message deliberately carries no
	// storage-engine vocabulary.
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"E_DUPLICATE_EMAIL",
	)

	// ErrInternal is the generic fallback for unexpected storage or
	// application failures. The real cause is logged, never returned.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"internal server error",
	)
)

// DatabaseExecuteError represents a storage execution failure, implementing
// the AppError interface. The wrapped cause stays server-side.
type DatabaseExecuteError struct {
	err error
}

// NewDatabaseExecuteError creates a storage-related error.
func NewDatabaseExecuteError(err error) AppError {
	return &DatabaseExecuteError{err: err}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Message returns the stable response message.
func (e *DatabaseExecuteError) Message() string {
	return "internal server error"
}

// Details returns the optional machine-readable details.
func (e *DatabaseExecuteError) Details() any {
	return nil
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
