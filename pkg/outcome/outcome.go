package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is a three-state result container: Ok with a non-nil value, Err
// with a non-nil *Error, or None for absence. Exactly one state is active;
// instances are immutable and every combinator derives a new one. The zero
// value behaves as None.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       *Error
	ok        bool
	none      bool
}

// Ok wraps a success value. The value must not be nil; absence is spelled
// None, never Ok(nil).
func Ok[T any](value T) Outcome[T] {
	if IsNil(value) {
		panic("outcome: Ok requires a non-nil value")
	}
	return Outcome[T]{
		value:     value,
		err:       nil,
		ok:        true,
		none:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err wraps a non-nil typed error.
func Err[T any](err *Error) Outcome[T] {
	if err == nil {
		panic("outcome: Err requires a non-nil error")
	}
	return Outcome[T]{
		err:       err,
		ok:        false,
		none:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// None is the absence of a value.
func None[T any]() Outcome[T] {
	return Outcome[T]{
		err:       nil,
		ok:        false,
		none:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From runs supply and lifts its return into an outcome: nil becomes None,
// anything else Ok. A panic inside supply is contained as an Unknown error
// carrying the fault as origin; this is the construction-side boundary where
// panics turn into values.
func From[T any](supply func() T) Outcome[T] {
	if supply == nil {
		panic("outcome: From requires a supplier")
	}
	v, cerr := safely("From supplier", supply)
	if cerr != nil {
		return Err[T](cerr)
	}
	if IsNil(v) {
		return None[T]()
	}
	return Ok(v)
}

// Try bridges Go's (value, error) convention: a non-nil error becomes Err
// through FromError, a nil value None, anything else Ok. Panics are contained
// like From.
func Try[T any](fn func() (T, error)) Outcome[T] {
	if fn == nil {
		panic("outcome: Try requires a function")
	}
	res, cerr := safely("Try function", func() Outcome[T] {
		v, err := fn()
		if err != nil {
			return Err[T](FromError(err))
		}
		if IsNil(v) {
			return None[T]()
		}
		return Ok(v)
	})
	if cerr != nil {
		return Err[T](cerr)
	}
	return res
}

// IsOk reports whether the outcome holds a value.
func (o Outcome[T]) IsOk() bool {
	return o.ok
}

// IsErr reports whether the outcome holds an error.
func (o Outcome[T]) IsErr() bool {
	return o.err != nil
}

// IsNone reports the absence of both a value and an error. It holds for the
// zero value too, so every representable Outcome is in exactly one state.
func (o Outcome[T]) IsNone() bool {
	return !o.ok && o.err == nil
}

// isZero distinguishes an uninitialized Outcome from a constructed None.
func (o Outcome[T]) isZero() bool {
	return !o.ok && !o.none && o.err == nil
}

// Value returns the success value, or the zero value of T when not Ok.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the typed error, or nil when not Err.
func (o Outcome[T]) Err() *Error {
	return o.err
}

// CreatedAt is the construction time (UTC).
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// Id identifies this particular outcome instance.
func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
