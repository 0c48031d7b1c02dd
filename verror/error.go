package verror

import "github.com/prachigauriar/twvalidation/value"

// Error is one node in a tree of validation failures (spec.md §3.3). It
// implements the standard error interface so it can be handed back from
// anything shaped like a Go function, but it is pure data: a Validator's
// Validate never returns anything else, and nothing in this module
// constructs an Error from an unrelated system fault.
type Error struct {
	kind             Kind
	code             string
	message          string
	validatedValue   value.Value
	hasValue         bool
	failingValidator any // identity of the sub-variant that produced this error

	underlying []*Error

	// Collection-specific slots. Only one family (collection or keyed)
	// is ever populated for a given Error, per spec.md §3.3's invariant.
	countError    *Error
	elementErrors []*Error

	keyErrors   []*Error
	valueErrors []*Error
	pairErrors  map[string]*Error

	errorsByKey map[string][]*Error
}

// New constructs a leaf Error. failingValidator should be the validator
// value (or a stable identity for it) that produced the failure; message
// is an opaque, human-oriented string (spec.md §3.3: "message is
// advisory; structural fields are the contract").
func New(kind Kind, failingValidator any, message string) *Error {
	return &Error{kind: kind, failingValidator: failingValidator, message: message, code: kind.String()}
}

// WithCode attaches a stable, localizer-friendly code distinct from the
// human message (SPEC_FULL.md §3.3). It returns the receiver for chaining.
func (e *Error) WithCode(code string) *Error {
	e.code = code
	return e
}

// WithValue attaches a snapshot of the value that failed validation.
func (e *Error) WithValue(v value.Value) *Error {
	e.validatedValue = v
	e.hasValue = true
	return e
}

// WithUnderlying attaches a flat list of contributing errors (used by
// compound, collection, keyed-collection, and KVC aggregation).
func (e *Error) WithUnderlying(errs ...*Error) *Error {
	e.underlying = append(e.underlying, errs...)
	return e
}

// WithCount attaches a Collection/KeyedCollection validator's count
// sub-error.
func (e *Error) WithCount(count *Error) *Error {
	e.countError = count
	return e
}

// WithElements attaches a Collection validator's per-element error list;
// entries are nil for elements that passed (spec.md §4.C.5).
func (e *Error) WithElements(elems []*Error) *Error {
	e.elementErrors = elems
	return e
}

// WithKeyErrors attaches a KeyedCollection validator's per-key errors.
func (e *Error) WithKeyErrors(errs []*Error) *Error {
	e.keyErrors = errs
	return e
}

// WithValueErrors attaches a KeyedCollection validator's per-value errors.
func (e *Error) WithValueErrors(errs []*Error) *Error {
	e.valueErrors = errs
	return e
}

// WithPairErrors attaches a KeyedCollection validator's per-pair errors,
// keyed by the object key the pair validator ran against.
func (e *Error) WithPairErrors(errs map[string]*Error) *Error {
	e.pairErrors = errs
	return e
}

// WithErrorsByKey attaches a KeyValueCoding validator's per-key error
// groups (spec.md §3.3).
func (e *Error) WithErrorsByKey(byKey map[string][]*Error) *Error {
	e.errorsByKey = byKey
	return e
}

// Kind returns the finite-enum failure kind.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the stable, machine-readable code for this error, used by
// Localizer implementations that key off something sturdier than the
// opaque Message. Defaults to Kind.String() when WithCode was never called.
func (e *Error) Code() string { return e.code }

// Message returns the opaque advisory message.
func (e *Error) Message() string { return e.message }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.kind.String()
}

// ValidatedValue returns the value snapshot attached to this error, if any.
func (e *Error) ValidatedValue() (value.Value, bool) { return e.validatedValue, e.hasValue }

// FailingValidator returns the identity of the validator sub-variant that
// produced this error.
func (e *Error) FailingValidator() any { return e.failingValidator }

// Underlying returns the flat list of contributing errors.
func (e *Error) Underlying() []*Error { return e.underlying }

// CountError returns the Collection/KeyedCollection count sub-error, if any.
func (e *Error) CountError() *Error { return e.countError }

// ElementErrors returns the Collection per-element error list (same
// length as the validated array; nil entries mean that element passed).
func (e *Error) ElementErrors() []*Error { return e.elementErrors }

// KeyErrors returns the KeyedCollection per-key error list.
func (e *Error) KeyErrors() []*Error { return e.keyErrors }

// ValueErrors returns the KeyedCollection per-value error list.
func (e *Error) ValueErrors() []*Error { return e.valueErrors }

// PairErrors returns the KeyedCollection per-pair error map, keyed by
// object key.
func (e *Error) PairErrors() map[string]*Error { return e.pairErrors }

// ErrorsByKey returns the KeyValueCoding per-key error groups.
func (e *Error) ErrorsByKey() map[string][]*Error { return e.errorsByKey }

// Equal reports whether e and other represent the same structured
// failure tree: equal Kind/Code/Message/validated-value, and
// structurally equal Underlying/count/element/key/value/pair/by-key
// sub-trees. go-cmp detects and calls a (T) Equal(T) bool method
// automatically, so cmp.Diff on *Error values uses this instead of
// trying (and failing) to recurse into unexported fields (spec.md §8's
// table-driven tree comparisons).
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.kind != other.kind || e.code != other.code || e.message != other.message {
		return false
	}
	if e.hasValue != other.hasValue {
		return false
	}
	if e.hasValue && !value.Equal(e.validatedValue, other.validatedValue) {
		return false
	}
	if !errorSlicesEqual(e.underlying, other.underlying) {
		return false
	}
	if !e.countError.Equal(other.countError) {
		return false
	}
	if !errorSlicesEqual(e.elementErrors, other.elementErrors) {
		return false
	}
	if !errorSlicesEqual(e.keyErrors, other.keyErrors) {
		return false
	}
	if !errorSlicesEqual(e.valueErrors, other.valueErrors) {
		return false
	}
	if !errorMapsEqual(e.pairErrors, other.pairErrors) {
		return false
	}
	if len(e.errorsByKey) != len(other.errorsByKey) {
		return false
	}
	for k, errs := range e.errorsByKey {
		if !errorSlicesEqual(errs, other.errorsByKey[k]) {
			return false
		}
	}
	return true
}

func errorSlicesEqual(a, b []*Error) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if !e.Equal(b[i]) {
			return false
		}
	}
	return true
}

func errorMapsEqual(a, b map[string]*Error) bool {
	if len(a) != len(b) {
		return false
	}
	for k, e := range a {
		if !e.Equal(b[k]) {
			return false
		}
	}
	return true
}

// Flatten walks the error tree in a deterministic, depth-first order and
// returns every node (including e itself) in a single slice — convenient
// for tests and for callers that just want "every leaf that failed."
func (e *Error) Flatten() []*Error {
	if e == nil {
		return nil
	}
	out := []*Error{e}
	out = append(out, flattenAll(e.underlying)...)
	out = append(out, flattenAll(nonNil(e.elementErrors))...)
	if e.countError != nil {
		out = append(out, e.countError.Flatten()...)
	}
	out = append(out, flattenAll(nonNil(e.keyErrors))...)
	out = append(out, flattenAll(nonNil(e.valueErrors))...)
	for _, k := range sortedKeys(e.pairErrors) {
		out = append(out, e.pairErrors[k].Flatten()...)
	}
	for _, k := range sortedKeys(e.errorsByKey) {
		out = append(out, flattenAll(e.errorsByKey[k])...)
	}
	return out
}

func flattenAll(errs []*Error) []*Error {
	var out []*Error
	for _, e := range errs {
		if e == nil {
			continue
		}
		out = append(out, e.Flatten()...)
	}
	return out
}

func nonNil(errs []*Error) []*Error {
	out := make([]*Error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic but not alphabetically meaningful beyond test
	// stability; ordering across keys is not a spec.md contract for
	// pair/by-key maps (only list-shaped slots have ordering contracts).
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
