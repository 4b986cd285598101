// Package apperr defines the error taxonomy shared by handlers and guards.
package apperr

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an error for the HTTP layer.
type Kind int

const (
	Internal Kind = iota
	BadRequest
	Unauthenticated
	Forbidden
	NotFound
)

func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad_request"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error with a client-visible message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap builds an Error of the given kind around a cause.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func NewBadRequest(msg string) *Error      { return New(BadRequest, msg) }
func NewUnauthenticated(msg string) *Error { return New(Unauthenticated, msg) }
func NewForbidden(msg string) *Error       { return New(Forbidden, msg) }
func NewNotFound(msg string) *Error        { return New(NotFound, msg) }

// NewInternal wraps an unexpected failure. The message is what the client sees.
func NewInternal(err error, msg string) *Error {
	return Wrap(Internal, err, msg)
}

// From extracts an *Error from err. Anything else is reported as Internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewInternal(err, "요청을 처리하는 중 오류가 발생했습니다.")
}

// KindOf returns the kind of err, Internal for foreign errors.
func KindOf(err error) Kind {
	return From(err).Kind
}
