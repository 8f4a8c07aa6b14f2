// Package serrors provides semantic error kinds. A Kind is a comparable
// sentinel for an error category; the Error wrapper attaches a kind, an
// optional cause and an optional message while staying fully compatible with
// errors.Is and errors.As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by sentinels created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Packages
// define their own kinds with it (see pkg/scrape) in addition to the common
// set below.
func NewKind(name string) Kind { return kind{s: name} }

// Common kinds shared across the application.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller may not perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates invalid input from the caller.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates an internal failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a transient infrastructure failure.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// errors.Is(err, target) matches when target equals either the kind sentinel
// or anything in the wrapped cause chain; errors.As behaves accordingly.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs an error of the given kind with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs an error of the given kind wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly constructs an error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches target against the kind sentinel and the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }
