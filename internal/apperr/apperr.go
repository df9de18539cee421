// Package apperr carries a small error taxonomy across service boundaries so
// handlers can map failures to HTTP statuses without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindUnauthorized
	KindConflict
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store_failure"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	// Op names the failing operation, e.g. "broadcast.fanout".
	Op  string
	Msg string
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(op, msg string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Msg: msg}
}

func Validation(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

func Unauthorized(op, msg string) *Error {
	return &Error{Kind: KindUnauthorized, Op: op, Msg: msg}
}

func Conflict(op, msg string) *Error {
	return &Error{Kind: KindConflict, Op: op, Msg: msg}
}

// Store wraps a persistence failure. msg should stay generic; err holds the
// driver detail and is only surfaced outside production.
func Store(op string, err error) *Error {
	return &Error{Kind: KindStore, Op: op, Msg: "store operation failed", Err: err}
}

// KindOf reports the kind of err, unwrapping as needed. Plain errors report
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound is a convenience for the most common check.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
