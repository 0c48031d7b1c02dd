// Package validator implements the composable value-validation algebra
// (spec.md §3.2, §4.C): immutable, equality-comparable validators that
// evaluate a value.Value and either pass or produce a verror.Error tree.
//
// Validators never mutate state and never short-circuit aggregation —
// every subvalidator in a compound or collection validator is always
// evaluated, so callers get a complete error inventory (spec.md §4.C.4).
package validator

import (
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// defaultMaxRecursionDepth bounds ThunkValidator's recursion guard,
// preventing an unsatisfiable $ref cycle from recursing forever at
// evaluation time. It is a fixed package constant; no option changes it.
const defaultMaxRecursionDepth = 64

// Validator is an immutable, composable predicate over a value.Value.
// All concrete variants in this package implement it; construct one via
// the New* functions rather than composite-literal-ing a concrete type,
// since several variants carry unexported bookkeeping state.
type Validator interface {
	// Validate runs the validator against a value from depth 0; it is
	// equivalent to the package-level Validate function.
	Validate(v value.Value) *verror.Error

	// evaluate is the depth-tracked evaluation entry point used for
	// internal recursion (compound/collection/keyed-collection
	// delegating to subvalidators, and Thunk resolving $ref cycles).
	// depth is the number of Thunk resolutions already unwound on the
	// current call stack; see Thunk.evaluate.
	evaluate(v value.Value, depth int) *verror.Error

	// Equal reports whether other is a structurally-equal validator of
	// the same concrete kind (spec.md §3.2: "immutable and
	// equality-comparable"). Block validators are equal only by
	// function-pointer identity (spec.md §4.C.11).
	Equal(other Validator) bool
}

// Validate runs v against val and returns nil on success or the
// structured failure tree on failure — the public §4.C operation,
// `validate(value) -> Result<(), Error>`.
func Validate(v Validator, val value.Value) *verror.Error {
	return v.evaluate(val, 0)
}
