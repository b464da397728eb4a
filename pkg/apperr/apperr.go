// Package apperr defines the closed set of error kinds the API can return.
// Every failure surfaced to a client is an *Error carrying an HTTP status and
// a human-readable message; anything else gets flattened to a 500 by pkg/resp.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single polymorphic error family of the service. Callers always
// receive a status and a message, never an untyped failure.
type Error struct {
	Status  int
	Message string
	Err     error // underlying cause, logged server-side but never rendered
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func newError(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// BadRequest reports malformed, missing, or invalid input (400).
func BadRequest(format string, args ...any) *Error {
	return newError(http.StatusBadRequest, format, args...)
}

// Unauthorized reports missing or invalid credentials (401).
func Unauthorized(format string, args ...any) *Error {
	return newError(http.StatusUnauthorized, format, args...)
}

// NotFound reports a referenced entity that does not exist (404).
func NotFound(format string, args ...any) *Error {
	return newError(http.StatusNotFound, format, args...)
}

// Conflict reports a state conflict such as a duplicate (409).
func Conflict(format string, args ...any) *Error {
	return newError(http.StatusConflict, format, args...)
}

// ExpectationFailed reports an expired or stale token (417).
func ExpectationFailed(format string, args ...any) *Error {
	return newError(http.StatusExpectationFailed, format, args...)
}

// Internal wraps an unexpected fault. The cause is preserved for logging; the
// rendered message stays generic so implementation detail never leaks to the
// caller.
func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Err:     err,
	}
}

// As unwraps err into a taxonomy *Error if there is one in its chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or 500 for anything
// outside the taxonomy.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return http.StatusInternalServerError
}
