// Package errs contains sentinel errors and the user-visible API error type
// used for stable error mapping across layers.
package errs

import (
	"errors"
	"net/http"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist
	// (or the caller has no access to it; the two are indistinguishable).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")
)

// Error is a user-visible API failure carrying the HTTP status to answer with
// and the exact message for the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest builds a 400 error.
func BadRequest(msg string) *Error { return &Error{Status: http.StatusBadRequest, Message: msg} }

// NotFound builds a 404 error.
func NotFound(msg string) *Error { return &Error{Status: http.StatusNotFound, Message: msg} }

// Conflict builds a 409 error.
func Conflict(msg string) *Error { return &Error{Status: http.StatusConflict, Message: msg} }

// Unauthorized builds a 401 error.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Internal builds a 500 error with a safe message.
func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}
