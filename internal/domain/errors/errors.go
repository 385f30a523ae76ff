// Package errors defines the application error taxonomy. Every error that can
// reach a client is an AppError carrying its HTTP status and a client-safe
// message; anything else is treated as an internal failure at the boundary.
package errors

import (
	"net/http"

	"shiptrack/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the client-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types. The exact message strings are part of the API
// contract: clients match on them, and the credential errors are deliberately
// identical for unknown-user and wrong-password so accounts cannot be
// enumerated through the login endpoint.
var (
	// ErrAccountExists covers a username or email uniqueness conflict on
	// signup. The message never reveals which of the two fields collided.
	ErrAccountExists = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_EXISTS",
		"Username or email already exists",
		"",
	)

	// ErrInvalidCredentials is returned for both an unknown username and a
	// password mismatch.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	// ErrInvalidToken collapses bad signature, expiry, and malformed
	// structure into a single outcome.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	// ErrInternal replaces any unexpected failure on the auth endpoints;
	// raw internals must not reach the client.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewValidationError creates a 400 error with an endpoint-specific message
// for missing or empty required fields.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// ShipmentStoreError represents a shipment persistence failure. Unlike the
// auth endpoints, shipment operations pass the underlying message through to
// the client with a 400 status.
type ShipmentStoreError struct {
	err error
}

// NewShipmentStoreError wraps a shipment store failure.
func NewShipmentStoreError(err error) AppError {
	return &ShipmentStoreError{err: err}
}

// Error implements the error interface.
func (e *ShipmentStoreError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the underlying store error.
func (e *ShipmentStoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *ShipmentStoreError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *ShipmentStoreError) ErrorCode() string {
	return "SHIPMENT_STORE_FAILED"
}

// Message returns the client-facing error message.
func (e *ShipmentStoreError) Message() string {
	return e.err.Error()
}

// Details returns detailed error information.
func (e *ShipmentStoreError) Details() string {
	return ""
}
