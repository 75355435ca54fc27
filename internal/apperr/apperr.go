// Package apperr classifies failures so callers can tell a refused action
// from a malformed message or an unreachable dependency.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the failure class.
type Kind string

const (
	KindInvalidOperation Kind = "INVALID_OPERATION"
	KindInvalidMessage   Kind = "INVALID_MESSAGE"
	KindNotFound         Kind = "NOT_FOUND"
	KindConnection       Kind = "CONNECTION_ERROR"
)

// Error is a classified failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidOperation means the caller may not do this right now.
func InvalidOperation(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// InvalidMessage means an inbound event or payload is malformed or untrusted.
func InvalidMessage(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidMessage, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Connection wraps a failure of a downstream service.
func Connection(message string, err error) error {
	return &Error{Kind: KindConnection, Message: message, Err: err}
}

// KindOf returns the kind of the first classified error in the chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Retryable reports whether redelivering the same input may succeed later.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindConnection:
		return true
	case KindInvalidMessage, KindInvalidOperation:
		return false
	}
	return err != nil
}
