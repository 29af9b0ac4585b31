package outcome

import (
	"errors"
	"fmt"
)

// GetOrElse returns the success value, or the given default for Err and None.
// The default must not be nil; use None-aware folds when absence matters.
func (o Outcome[T]) GetOrElse(other T) T {
	if IsNil(other) {
		panic("outcome: GetOrElse requires a non-nil default")
	}
	if o.ok {
		return o.value
	}
	return other
}

// GetOrElseGet is GetOrElse with a lazily produced default: supply runs only
// for Err and None.
func (o Outcome[T]) GetOrElseGet(supply func() T) T {
	if supply == nil {
		panic("outcome: GetOrElseGet requires a supplier")
	}
	if o.ok {
		return o.value
	}
	return supply()
}

// Unwrap hands back the success value or re-raises the failure as a panic:
// for Err the panic error wraps the error's origin, for None it signals
// emptiness. This is the single escape hatch into panic-based control flow,
// meant for integration edges rather than pipelines.
func (o Outcome[T]) Unwrap() T {
	if o.ok {
		return o.value
	}
	if o.err != nil {
		panic(faultOf(fmt.Sprintf("outcome: unwrap failed: %s - %s", o.err.code, o.err.message), o.err.origin))
	}
	panic(errors.New("outcome: unwrap failed: outcome is none"))
}

// Fold reduces the outcome to a single value: exactly one of the three
// handlers runs, selected by the live state. All handlers are required.
func Fold[T any, U any](o Outcome[T], onOk func(T) U, onErr func(*Error) U, onNone func() U) U {
	if onOk == nil || onErr == nil || onNone == nil {
		panic("outcome: Fold requires all three handlers")
	}
	switch {
	case o.ok:
		return onOk(o.value)
	case o.err != nil:
		return onErr(o.err)
	default:
		return onNone()
	}
}
