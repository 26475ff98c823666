// Package apperror defines the failure kinds surfaced by the trivia API.
//
// Components return *Error values carrying a Kind; the HTTP boundary maps the
// kind to a status code without inspecting messages.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into one of the outward error categories.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindMethodNotAllowed
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// Error is a classified failure. Message is safe to return to clients; Err is
// the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest reports malformed or missing client input.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an empty result where one was required.
func NotFound(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: cause}
}

// Unprocessable reports a store mutation that failed for a non-validation reason.
func Unprocessable(cause error) *Error {
	return &Error{Kind: KindUnprocessable, Err: cause}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Err: cause}
}

// KindOf returns the kind of err, or KindInternal if err is not classified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err, if any.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
