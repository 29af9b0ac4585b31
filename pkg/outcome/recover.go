package outcome

import "errors"

// Recover maps an Err outcome back to a value: a non-nil replacement becomes
// Ok, nil becomes None. When fn itself panics the outcome stays Err with the
// original error, annotated with a combined origin that joins the old origin
// and the new fault; recovery failure never fabricates a new error kind. Ok
// and None pass through without invoking fn.
func (o Outcome[T]) Recover(fn func(*Error) T) Outcome[T] {
	if fn == nil {
		panic("outcome: Recover requires a recovery function")
	}
	if o.err == nil {
		return o
	}

	v, cerr := safely("Recover function", func() T {
		return fn(o.err)
	})
	if cerr != nil {
		return Err[T](o.err.With(recoveryFault("outcome: recovery failed", o.err, cerr)))
	}
	if IsNil(v) {
		return None[T]()
	}
	return Ok(v)
}

// RecoverWith is Recover for functions that return a full outcome, allowing
// recovery into Ok, a different Err, or None; a zero-value return counts as
// None. Same fault policy as Recover.
func (o Outcome[T]) RecoverWith(fn func(*Error) Outcome[T]) Outcome[T] {
	if fn == nil {
		panic("outcome: RecoverWith requires a recovery function")
	}
	if o.err == nil {
		return o
	}

	res, cerr := safely("RecoverWith mapper", func() Outcome[T] {
		return fn(o.err)
	})
	if cerr != nil {
		return Err[T](o.err.With(recoveryFault("outcome: recovery mapper failed", o.err, cerr)))
	}
	if res.isZero() {
		return None[T]()
	}
	return res
}

// recoveryFault combines the failing error's own origin with the fault raised
// during recovery. Both stay reachable through errors.Is and GetErrors.
func recoveryFault(msg string, orig *Error, cerr *Error) error {
	return errors.Join(faultOf(msg, orig.origin), cerr.origin)
}
