package outcome

import "errors"

// FromError lifts an arbitrary error into the taxonomy. A *Error anywhere in
// the chain is returned as is; anything else becomes an Unknown error with
// the original error as origin. Nil yields nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Unknown(UnexpectedError, UnexpectedErrorMessage).With(err)
}
