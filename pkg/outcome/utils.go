package outcome

import "reflect"

// IsNil reports whether i holds no value: untyped nil, or a nil pointer,
// interface, map, slice, func or channel. Values of non-nilable kinds are
// never nil.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors splits a joined error into its parts. A plain error comes back as
// a single-element slice, nil as an empty one.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
