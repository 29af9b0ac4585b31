package outcome

// IfOk runs action only when the outcome holds a value. The outcome itself is
// not altered.
func (o Outcome[T]) IfOk(action func(T)) {
	if action == nil {
		panic("outcome: IfOk requires an action")
	}
	if o.ok {
		action(o.value)
	}
}

// IfErr runs action only when the outcome holds an error.
func (o Outcome[T]) IfErr(action func(*Error)) {
	if action == nil {
		panic("outcome: IfErr requires an action")
	}
	if o.err != nil {
		action(o.err)
	}
}

// IfNone runs action only when the outcome is empty.
func (o Outcome[T]) IfNone(action func()) {
	if action == nil {
		panic("outcome: IfNone requires an action")
	}
	if o.IsNone() {
		action()
	}
}

// Tap runs action on the success value for its side effect and hands the
// outcome back unchanged. A panic inside action is contained as an Unknown
// error; Err and None pass through without invoking action.
func (o Outcome[T]) Tap(action func(T)) Outcome[T] {
	if action == nil {
		panic("outcome: Tap requires an action")
	}
	if !o.ok {
		return o
	}

	if cerr := safelyDo("Tap action", func() {
		action(o.value)
	}); cerr != nil {
		return Err[T](cerr)
	}
	return o
}

// TapWith runs mapper on the success value as a side validation, observing
// only failure: an Err side result replaces the outcome, an Ok or None side
// result leaves the original value untouched and its payload is discarded. A
// zero-value side result counts as a mapper fault. Err inputs propagate
// rewrapped, None stays None. A panic inside mapper is contained as an
// Unknown error.
func TapWith[T any, U any](o Outcome[T], mapper func(T) Outcome[U]) Outcome[T] {
	if mapper == nil {
		panic("outcome: TapWith requires a mapper")
	}
	if o.err != nil {
		return Err[T](o.err)
	}
	if o.IsNone() {
		return None[T]()
	}

	side, cerr := safely("TapWith mapper", func() Outcome[U] {
		return mapper(o.value)
	})
	if cerr != nil {
		return Err[T](cerr)
	}
	if side.isZero() {
		return Err[T](Unknown(UnexpectedError, "mapper returned a zero outcome"))
	}
	if side.err != nil {
		return Err[T](side.err)
	}
	return o
}
