// Package errs classifies service failures into a closed set of kinds,
// each carrying a default HTTP status. Handlers map errors to responses
// through StatusOf/MessageOf instead of matching on message strings.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindPaymentVerifFailed Kind = "payment_verification_failed"
	KindGateway            Kind = "gateway"
	KindStore              Kind = "store"
	KindInvalid            Kind = "invalid"
	KindUnauthorized       Kind = "unauthorized"
	KindForbidden          Kind = "forbidden"
	KindConflict           Kind = "conflict"
)

func defaultStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindPaymentVerifFailed:
		return http.StatusPaymentRequired
	case KindGateway:
		return http.StatusBadGateway
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified service error. Message is safe to return to
// clients; Err holds the underlying cause for logs.
type Error struct {
	Kind    Kind
	Status  int
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op, message string) *Error {
	return &Error{
		Kind:    kind,
		Status:  defaultStatus(kind),
		Op:      op,
		Message: message,
	}
}

func Wrap(kind Kind, op, message string, err error) *Error {
	e := New(kind, op, message)
	e.Err = err
	return e
}

// WithStatus overrides the kind's default HTTP status.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// KindOf returns the error's kind, or the zero Kind for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Kind("")
}

// StatusOf returns the HTTP status for err, 500 for unclassified errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message, a generic one for
// unclassified errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
