package errors

import (
	"net/http"

	"profilehub/internal/errors"
)

// User-facing explanation strings. These are the only texts that ever reach a
// client; driver and infrastructure detail stays in the logs.
const (
	MsgBadRequest        = "Please try again"
	MsgLoginFailed       = "Sorry we cannot find you. Try again or Register"
	MsgInternalError     = "Please try again. If problem persist then report to webmaster"
	MsgDuplicateEmail    = "Email duplicate"
	MsgDuplicateUsername = "Username duplicate"
	MsgInvalidEmail      = "Email invalid"
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

// Predefined error types.
//
// Duplicate-key conflicts deliberately surface as 400 rather than 409, and a
// profile missing by id surfaces as 400 rather than 404; both mappings are part
// of the published API contract and preserved as-is.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		MsgBadRequest,
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_NOT_FOUND",
		MsgBadRequest,
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		MsgInvalidEmail,
		"",
	)

	ErrDuplicateEmail = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_EMAIL",
		MsgDuplicateEmail,
		"",
	)

	ErrDuplicateUsername = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USERNAME",
		MsgDuplicateUsername,
		"",
	)

	// ErrLoginFailed covers both the unknown-username and wrong-password
	// outcomes so clients cannot enumerate registered usernames. The
	// whole-object update flow reuses it for an unknown username as well.
	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		MsgLoginFailed,
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		MsgInternalError,
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
	return MsgInternalError
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
