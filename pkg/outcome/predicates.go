package outcome

import "errors"

// KindOf classifies err against the taxonomy: the first Kinder in the chain
// decides; anything else, including nil, is KindUnknown.
func KindOf(err error) Kind {
	var k Kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// HasKind reports whether a Kinder in err's chain carries the given kind.
// Unlike KindOf it never treats a foreign error as Unknown.
func HasKind(err error, kind Kind) bool {
	var k Kinder
	if errors.As(err, &k) {
		return k.Kind() == kind
	}
	return false
}

// CodeOf extracts the machine-readable code from err's chain, or "" when no
// Coder is present.
func CodeOf(err error) string {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// HasCode reports whether err's chain carries the given non-empty code.
func HasCode(err error, code string) bool {
	if code == "" {
		return false
	}
	return CodeOf(err) == code
}

// IsUnexpected reports whether err is a contained fault, an Unknown error
// carrying the UnexpectedError code.
func IsUnexpected(err error) bool {
	return HasKind(err, KindUnknown) && HasCode(err, UnexpectedError)
}
