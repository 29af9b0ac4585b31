package outcome

import (
	"errors"
	"fmt"
)

// faultOf builds an error with an optional wrapped cause. It is the primitive
// behind every synthetic origin in the package; the cause stays reachable
// through errors.Unwrap.
func faultOf(msg string, cause error) error {
	if cause == nil {
		return errors.New(msg)
	}
	return fmt.Errorf("%s: %w", msg, cause)
}

// panicFault converts a recovered panic value into an error, preserving error
// identity when the panic carried one.
func panicFault(op string, v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("outcome: %s panicked: %w", op, err)
	}
	return fmt.Errorf("outcome: %s panicked: %v", op, v)
}

// safely invokes fn and converts a panic into an Unknown error, so a fault
// raised by caller-supplied code never crosses a combinator boundary.
func safely[R any](op string, fn func() R) (out R, cerr *Error) {
	defer func() {
		if v := recover(); v != nil {
			cerr = Unknown(UnexpectedError, UnexpectedErrorMessage).With(panicFault(op, v))
		}
	}()
	return fn(), nil
}

// safelyDo is safely for side-effecting functions with no return value.
func safelyDo(op string, fn func()) (cerr *Error) {
	defer func() {
		if v := recover(); v != nil {
			cerr = Unknown(UnexpectedError, UnexpectedErrorMessage).With(panicFault(op, v))
		}
	}()
	fn()
	return nil
}
