// Package apperrors defines the error taxonomy shared by the services and
// the transport layers.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindStore is an underlying persistence failure. Unclassified errors
	// are reported as KindStore.
	KindStore Kind = iota
	// KindValidation is a missing or blank required field.
	KindValidation
	// KindDuplicate is a flavor name collision.
	KindDuplicate
	// KindNotFound is a referenced flavor that does not exist.
	KindNotFound
)

// String returns the machine-readable code used in error responses.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindDuplicate:
		return "DUPLICATE_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "STORE_ERROR"
	}
}

// HTTPStatus maps the kind to a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the application error type.
type Error struct {
	Kind    Kind   // Classification
	Message string // Human-readable, safe to show to end users
	Cause   error  // Wrapped underlying error, never shown to end users
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks by kind.
var (
	ErrStore      = &Error{Kind: KindStore}
	ErrValidation = &Error{Kind: KindValidation}
	ErrDuplicate  = &Error{Kind: KindDuplicate}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

// Validation creates a validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Duplicate creates a duplicate error wrapping the store conflict.
func Duplicate(message string, cause error) *Error {
	return &Error{Kind: KindDuplicate, Message: message, Cause: cause}
}

// NotFound creates a not-found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Store creates a store error wrapping the persistence failure.
func Store(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, Cause: cause}
}

// KindOf returns the kind of err. Errors outside the taxonomy are KindStore.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// MessageOf returns the user-facing message of err.
// Errors outside the taxonomy get a generic message so internals do not leak.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Internal server error"
}
