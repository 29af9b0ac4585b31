package outcome

// Kinder is implemented by errors that expose a taxonomy variant. Predicates
// look it up through errors.As, so wrapping a *Error keeps it classifiable.
type Kinder interface {
	// Kind returns the variant discriminant
	Kind() Kind
}

// Coder is implemented by errors that expose a stable machine-readable code.
type Coder interface {
	// Code returns the machine-readable identifier
	Code() string
}

// Messenger extends Coder with the human-readable side of the contract.
type Messenger interface {
	Coder
	// Message returns the human-readable description
	Message() string
}
