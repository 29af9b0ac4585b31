// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Outcome[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map/Filter/Tap: transform, guard or observe the value
// - Or/And: combine alternative or required chains
// - OrElseErr/Recover/RecoverWith: move from failure back to a value
// - Ensure: trigger side effects without changing the outcome
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability. Type-changing steps live in the parent
// package as free functions.
package chain
