package outcome

// Pair couples the two success values produced by Zip.
type Pair[F any, S any] struct {
	First  F
	Second S
}

// Replace swaps the success value for newValue, keeping only the state shape:
// an error propagates as is, a nil newValue ends in None, anything else in
// Ok(newValue). The original value is discarded.
func Replace[T any, U any](o Outcome[T], newValue U) Outcome[U] {
	if o.err != nil {
		return Err[U](o.err)
	}
	if IsNil(newValue) {
		return None[U]()
	}
	return Ok(newValue)
}

// Map applies fn to the success value and wraps the result as Ok. It routes
// through FlatMap, so a panic inside fn is contained and a nil mapped value
// surfaces as an Unknown error, not as None.
func Map[T any, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if fn == nil {
		panic("outcome: Map requires a mapper")
	}
	return FlatMap(o, func(v T) Outcome[U] {
		return Ok(fn(v))
	})
}

// FlatMap invokes fn on the success value and adopts its outcome, flattening
// one nesting level by construction. Err and None propagate without invoking
// fn; a panic inside fn is contained as an Unknown error; a zero-value result
// normalizes to None.
func FlatMap[T any, U any](o Outcome[T], fn func(T) Outcome[U]) Outcome[U] {
	if fn == nil {
		panic("outcome: FlatMap requires a mapper")
	}
	if o.err != nil {
		return Err[U](o.err)
	}
	if o.IsNone() {
		return None[U]()
	}

	res, cerr := safely("FlatMap mapper", func() Outcome[U] {
		return fn(o.value)
	})
	if cerr != nil {
		return Err[U](cerr)
	}
	if res.isZero() {
		return None[U]()
	}
	return res
}

// MapErr lets fn rewrite the error of an Err outcome. Returning the same
// instance leaves the outcome untouched; returning a different error chains
// it onto the original via WithCause. fn must not return nil; Ok and None
// pass through without invoking fn.
func (o Outcome[T]) MapErr(fn func(*Error) *Error) Outcome[T] {
	if fn == nil {
		panic("outcome: MapErr requires a mapper")
	}
	if o.err == nil {
		return o
	}

	mapped := fn(o.err)
	if mapped == nil {
		panic("outcome: MapErr mapper returned nil")
	}
	if mapped == o.err {
		return o
	}
	return Err[T](mapped.WithCause(o.err))
}

// OrElseErr turns None into Err(err); Ok and Err pass through.
func (o Outcome[T]) OrElseErr(err *Error) Outcome[T] {
	if err == nil {
		panic("outcome: OrElseErr requires an error")
	}
	if o.IsNone() {
		return Err[T](err)
	}
	return o
}

// Zip pairs two success values. When both sides fail the first operand's
// error wins; with no error present on either side the result is None.
func Zip[T any, U any](o Outcome[T], other Outcome[U]) Outcome[Pair[T, U]] {
	if o.ok && other.ok {
		return Ok(Pair[T, U]{First: o.value, Second: other.value})
	}
	if o.err != nil {
		return Err[Pair[T, U]](o.err)
	}
	if other.err != nil {
		return Err[Pair[T, U]](other.err)
	}
	return None[Pair[T, U]]()
}

// Filter keeps an Ok value only when pred accepts it and fails with
// errIfFalse otherwise. A panic inside pred is contained as an Unknown error;
// Err and None pass through without invoking pred.
func (o Outcome[T]) Filter(pred func(T) bool, errIfFalse *Error) Outcome[T] {
	if pred == nil {
		panic("outcome: Filter requires a predicate")
	}
	if errIfFalse == nil {
		panic("outcome: Filter requires an error for rejected values")
	}
	if !o.ok {
		return o
	}

	keep, cerr := safely("Filter predicate", func() bool {
		return pred(o.value)
	})
	if cerr != nil {
		return Err[T](cerr)
	}
	if !keep {
		return Err[T](errIfFalse)
	}
	return o
}
