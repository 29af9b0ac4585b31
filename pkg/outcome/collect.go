package outcome

// Sequence collapses a slice of outcomes into one outcome of a slice. The
// scan runs in order and short-circuits at the first non-Ok element, Err or
// None alike; all-Ok input yields the values in their original order. A nil
// slice counts as empty and yields Ok of an empty slice.
func Sequence[T any](outcomes []Outcome[T]) Outcome[[]T] {
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		switch {
		case o.ok:
			values = append(values, o.value)
		case o.err != nil:
			return Err[[]T](o.err)
		default:
			return None[[]T]()
		}
	}
	return Ok(values)
}

// Traverse maps items through mapper and sequences the results. The mapper
// runs on every element before aggregation, so it is equivalent to Sequence
// applied after an elementwise map.
func Traverse[T any, U any](items []T, mapper func(T) Outcome[U]) Outcome[[]U] {
	if mapper == nil {
		panic("outcome: Traverse requires a mapper")
	}
	outcomes := make([]Outcome[U], 0, len(items))
	for _, item := range items {
		outcomes = append(outcomes, mapper(item))
	}
	return Sequence(outcomes)
}

// Flatten collapses one level of nesting: Ok(inner) becomes inner, Err and
// None propagate.
func Flatten[T any](nested Outcome[Outcome[T]]) Outcome[T] {
	switch {
	case nested.ok:
		return nested.value
	case nested.err != nil:
		return Err[T](nested.err)
	default:
		return None[T]()
	}
}
