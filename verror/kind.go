// Package verror defines the structured, nestable validation-error tree
// returned by the validator algebra (spec.md §3.3). It is a pure data
// model: constructing a verror.Error never fails and never wraps a
// system error — see spec.md §7's propagation policy.
package verror

// Kind identifies which family of failure an Error represents. Every
// validator variant in package validator may only ever produce the
// kinds its doc comment names (spec.md §3.3's invariant).
type Kind int

const (
	// ValueNil marks a value/class validator rejecting an absent value.
	ValueNil Kind = iota
	// ValueNull marks a value/class validator rejecting an explicit null.
	ValueNull
	// IncorrectType marks a variant-tag mismatch.
	IncorrectType
	// NonIntegral marks a number validator rejecting a fractional value
	// where an integer was required.
	NonIntegral
	// LessThanMin marks a lower-bound violation (numeric value or
	// element/key count).
	LessThanMin
	// GreaterThanMax marks an upper-bound violation (numeric value or
	// element/key count).
	GreaterThanMax
	// FormatMismatch marks a regex/prefix/suffix/substring/wildcard/
	// character-set string-format violation.
	FormatMismatch
	// LengthLessThanMin marks a string length below its minimum.
	LengthLessThanMin
	// LengthGreaterThanMax marks a string length above its maximum.
	LengthGreaterThanMax
	// NotInSet marks a ValueSet or enum membership failure.
	NotInSet
	// NotACollection marks a Collection validator applied to a non-array.
	NotACollection
	// NotAKeyedCollection marks a KeyedCollection validator applied to a
	// non-object.
	NotAKeyedCollection
	// KVCError marks an aggregate failure from a KeyValueCoding
	// validator; per-key detail lives in Error.ErrorsByKey.
	KVCError
	// CompoundError marks an aggregate failure from an And/Or/Not/
	// MutualExclusion validator; detail lives in Error.Underlying.
	CompoundError
	// CollectionError marks an aggregate failure from a Collection
	// validator; detail lives in Error.CountError/Error.ElementErrors.
	CollectionError
	// KeyedCollectionError marks an aggregate failure from a
	// KeyedCollection validator; detail lives in Error.CountError/
	// Error.KeyErrors/Error.ValueErrors/Error.PairErrors.
	KeyedCollectionError
)

var kindNames = [...]string{
	ValueNil:             "value-nil",
	ValueNull:            "value-null",
	IncorrectType:        "incorrect-type",
	NonIntegral:          "non-integral",
	LessThanMin:          "less-than-min",
	GreaterThanMax:       "greater-than-max",
	FormatMismatch:       "format-mismatch",
	LengthLessThanMin:    "length-lt-min",
	LengthGreaterThanMax: "length-gt-max",
	NotInSet:             "not-in-set",
	NotACollection:       "not-a-collection",
	NotAKeyedCollection:  "not-a-keyed-collection",
	KVCError:             "kvc-error",
	CompoundError:        "compound-error",
	CollectionError:      "collection-error",
	KeyedCollectionError: "keyed-collection-error",
}

// String renders the Kind using the kebab-case names spec.md §3.3 gives
// each finite-enum member.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown-error-kind"
}
