// Package errors defines the error taxonomy of the sorting framework.
//
// Only one kind of failure is ever surfaced to callers: an invalid argument
// (missing sequence, missing ordering relation, unknown algorithm name).
// Every such failure satisfies errors.Is(err, ErrInvalidArgument) and
// optionally carries an underlying cause.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched by every InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a malformed invocation. Message describes what
// was wrong; Cause, when present, is the error that led to the rejection.
type InvalidArgumentError struct {
	Message string
	Cause   error
}

// InvalidArgument builds an *InvalidArgumentError. At most one cause is used;
// passing more than one keeps the first non-nil.
func InvalidArgument(msg string, cause ...error) *InvalidArgumentError {
	e := &InvalidArgumentError{Message: msg}

	for _, c := range cause {
		if c != nil {
			e.Cause = c

			break
		}
	}

	return e
}

// InvalidArgumentf is InvalidArgument with a formatted message and no cause.
func InvalidArgumentf(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Message)
	}

	return fmt.Sprintf("%s: %s: %v", ErrInvalidArgument, e.Message, e.Cause)
}

// Unwrap returns the cause, so errors.Is/As can see through to it.
func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// Is makes every InvalidArgumentError match ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument //nolint:errorlint
}

// Is, As, New and Join re-export the standard library helpers so callers
// importing this package under the name "errors" don't need a second import.
var (
	Is   = errors.Is
	As   = errors.As
	New  = errors.New
	Join = errors.Join
)
