// Package apperr defines the failure taxonomy shared by all core operations
// and its mapping onto HTTP status codes. Handlers stay thin: they call a core
// function and hand whatever error comes back to HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for transport mapping.
type Kind int

const (
	Unauthenticated Kind = iota + 1
	InvalidInput
	NotFound
	OutOfStock
	Conflict
	Storage
)

// Error carries a kind, a client-safe message and an optional wrapped cause.
// The cause is for logs only; Error() never exposes it to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and client-safe message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from anywhere in the chain; 0 when the error does
// not carry one.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// HTTPStatus maps an error to the status code handlers should respond with.
// Unknown errors are treated as storage-level failures.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Unauthenticated:
		return http.StatusUnauthorized
	case InvalidInput, OutOfStock:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
