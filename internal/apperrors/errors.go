// Package apperrors defines the error taxonomy shared by the store adapter,
// the aggregate repositories and the services. Handlers translate kinds into
// HTTP status codes; callers branch on kinds, never on message strings.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindInvalid marks malformed or missing input. Never retried.
	KindInvalid Kind = "invalid"
	// KindForbidden marks input that is well formed but fails a semantic
	// check (unknown user, non-roommate assignee, bad task fields).
	KindForbidden Kind = "forbidden"
	// KindNotFound marks a referenced entity that is absent.
	KindNotFound Kind = "not_found"
	// KindConflict marks a conditional write rejected by the store because
	// of a duplicate id or a concurrent mutation. Composite operations are
	// safe to retry from the start.
	KindConflict Kind = "conflict"
	// KindIntegrity marks a violated data invariant, e.g. a room record
	// missing its name attribute. Alert-worthy, not retryable.
	KindIntegrity Kind = "integrity"
	// KindUnavailable marks a store I/O failure. Retryable with backoff.
	KindUnavailable Kind = "unavailable"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(message string) error {
	return &Error{Kind: KindInvalid, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func Integrity(message string) error {
	return &Error{Kind: KindIntegrity, Message: message}
}

func Unavailable(message string, err error) error {
	return &Error{Kind: KindUnavailable, Message: message, Err: err}
}

// KindOf reports the kind of err, or KindUnavailable for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// MessageOf reports the stable user-visible message of err, or a generic one
// for untyped errors so internals never leak to clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "An unexpected error occurred"
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsConflict(err error) bool { return KindOf(err) == KindConflict }
