package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an Outcome[T] for fluent same-type composition.
type Chain[T any] struct {
	out outcome.Outcome[T]
}

func Start[T any](o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: o}
}

func FromValue[T any](v T) Chain[T] {
	return Start(outcome.Ok(v))
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then composes functions that already return an outcome
func (c Chain[T]) Then(onOk func(t T) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: outcome.FlatMap(c.out, onOk)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{out: outcome.FlatMap(c.out, func(t T) outcome.Outcome[T] {
		return outcome.Try(func() (T, error) {
			return try(t)
		})
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	return Chain[T]{out: outcome.Map(c.out, onOk)}
}

func (c Chain[T]) Filter(pred func(t T) bool, errIfFalse *outcome.Error) Chain[T] {
	return Chain[T]{out: c.out.Filter(pred, errIfFalse)}
}

func (c Chain[T]) Tap(action func(t T)) Chain[T] {
	return Chain[T]{out: c.out.Tap(action)}
}

func (c Chain[T]) OrElseErr(err *outcome.Error) Chain[T] {
	return Chain[T]{out: c.out.OrElseErr(err)}
}

func (c Chain[T]) Recover(fn func(*outcome.Error) T) Chain[T] {
	return Chain[T]{out: c.out.Recover(fn)}
}

func (c Chain[T]) RecoverWith(fn func(*outcome.Error) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: c.out.RecoverWith(fn)}
}

// Or picks the first chain holding a value: c when Ok, otherwise the
// alternative when Ok; failing that, the first Err between them wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.out.IsOk() {
		return c
	}
	if alternative.out.IsOk() {
		return alternative
	}
	if c.out.IsErr() {
		return c
	}
	if alternative.out.IsErr() {
		return alternative
	}
	return c
}

// And requires both chains to hold a value, keeping the right one; a failing
// receiver side wins otherwise.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if !c.out.IsOk() {
		return c
	}
	return required
}

// Ensure triggers side effects for the live state without changing the
// outcome; nil callbacks are skipped.
func (c Chain[T]) Ensure(onOk func(T), onErr func(*outcome.Error), onNone func()) Chain[T] {
	switch {
	case c.out.IsErr():
		if onErr != nil {
			onErr(c.out.Err())
		}
	case c.out.IsOk():
		if onOk != nil {
			onOk(c.out.Value())
		}
	default:
		if onNone != nil {
			onNone()
		}
	}
	return c
}

// Finally collapses the chain to a final value, delegating to outcome.Fold
func (c Chain[T]) Finally(onOk func(T) T, onErr func(*outcome.Error) T, onNone func() T) T {
	return outcome.Fold(c.out, onOk, onErr, onNone)
}
