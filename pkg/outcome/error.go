package outcome

import (
	"fmt"
	"log/slog"
)

// UnexpectedError is the code carried by Unknown errors minted when a
// caller-supplied operation panics inside a combinator; UnexpectedErrorMessage
// is the fixed message that accompanies it.
const (
	UnexpectedError        = "UNEXPECTED_ERROR"
	UnexpectedErrorMessage = "Failed to finish the operation"
)

// Kind discriminates the closed set of error variants an Err outcome can
// carry. Adding a kind here forces every switch over Kind to handle it.
type Kind uint8

const (
	// KindUnknown represents an unclassified failure, including contained panics
	KindUnknown Kind = iota
	// KindNotFound represents a missing resource
	KindNotFound
	// KindValidationFailed represents input that failed validation
	KindValidationFailed
	// KindPermissionDenied represents a caller lacking the right to proceed
	KindPermissionDenied
	// KindInvalidRequest represents a malformed or nonsensical request
	KindInvalidRequest
	// KindDuplicateRequest represents a request that repeats a previous one
	KindDuplicateRequest
)

// String returns the variant name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidationFailed:
		return "ValidationFailed"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindInvalidRequest:
		return "InvalidRequest"
	case KindDuplicateRequest:
		return "DuplicateRequest"
	default:
		return "Unknown"
	}
}

// Error is an immutable typed error: a Kind discriminant, a machine-readable
// code, a human-readable message and an optional causal origin. Instances are
// never mutated; every rebind produces a new one.
type Error struct {
	kind    Kind
	code    string
	message string
	origin  error
}

var (
	_ error          = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
	_ Kinder         = (*Error)(nil)
	_ Coder          = (*Error)(nil)
)

func newError(kind Kind, code, message string, origin error) *Error {
	return &Error{
		kind:    kind,
		code:    code,
		message: message,
		origin:  origin,
	}
}

// NotFound builds a NotFound error with no origin.
func NotFound(code, message string) *Error {
	return newError(KindNotFound, code, message, nil)
}

// ValidationFailed builds a ValidationFailed error with no origin.
func ValidationFailed(code, message string) *Error {
	return newError(KindValidationFailed, code, message, nil)
}

// PermissionDenied builds a PermissionDenied error with no origin.
func PermissionDenied(code, message string) *Error {
	return newError(KindPermissionDenied, code, message, nil)
}

// InvalidRequest builds an InvalidRequest error with no origin.
func InvalidRequest(code, message string) *Error {
	return newError(KindInvalidRequest, code, message, nil)
}

// DuplicateRequest builds a DuplicateRequest error with no origin.
func DuplicateRequest(code, message string) *Error {
	return newError(KindDuplicateRequest, code, message, nil)
}

// Unknown builds an Unknown error with no origin.
func Unknown(code, message string) *Error {
	return newError(KindUnknown, code, message, nil)
}

// Kind returns the variant discriminant.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the machine-readable identifier.
func (e *Error) Code() string {
	return e.code
}

// Message returns the human-readable description.
func (e *Error) Message() string {
	return e.message
}

// Origin returns the causal predecessor, or nil when there is none.
func (e *Error) Origin() error {
	return e.origin
}

// With returns a copy of the error with origin replaced; kind, code and
// message are unchanged.
func (e *Error) With(origin error) *Error {
	return newError(e.kind, e.code, e.message, origin)
}

// WithCause chains e onto an older error: the copy's origin describes the
// cause's code and message and wraps the cause's own origin, so the root of
// the chain is never lost. The cause must not be nil.
func (e *Error) WithCause(cause *Error) *Error {
	if cause == nil {
		panic("outcome: WithCause requires a cause")
	}
	return e.With(faultOf(fmt.Sprintf("caused by: %s - %s", cause.code, cause.message), cause.origin))
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.origin != nil {
		return fmt.Sprintf("%s: %s (%v)", e.code, e.message, e.origin)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Unwrap exposes the origin to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.origin
}

// LogValue renders the error as a structured group for slog.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}
	attrs := []slog.Attr{
		slog.String("kind", e.kind.String()),
		slog.String("code", e.code),
		slog.String("message", e.message),
	}
	if e.origin != nil {
		attrs = append(attrs, slog.String("origin", e.origin.Error()))
	}
	return slog.GroupValue(attrs...)
}
