// Package outcome provides a three-state algebraic result type for
// synchronous pipelines: Ok with a value, Err with a typed error, or None for
// absence. Outcomes are immutable values; every combinator derives a new one,
// which makes them safe to share without locking.
//
// Highlights:
// - Ok/Err/None/From/Try: construct Outcome[T]
// - Map/FlatMap/Filter/Zip/Replace: transform successful values
// - Sequence/Traverse/Flatten: aggregate collections of outcomes
// - MapErr/OrElseErr/Recover/RecoverWith: move from failure back to a value
// - IfOk/IfErr/IfNone/Tap/TapWith: side-effect hooks
// - GetOrElse/GetOrElseGet/Unwrap/Fold: extract a final value
//
// Err outcomes carry *Error, a closed taxonomy of six kinds with a
// machine-readable code, a message and an optional causal origin chain.
// Panics raised inside caller-supplied functions never escape a combinator:
// they are contained as Unknown errors with code UNEXPECTED_ERROR. Unwrap is
// the single deliberate exception and re-raises failure as a panic.
package outcome
