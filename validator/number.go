package validator

import (
	"fmt"
	"math"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// numericEpsilon tolerates float64 representation error when checking
// multipleOf and integrality. spec.md leaves the source's reliance on
// arbitrary-precision rationals unspecified for this subset; an epsilon
// comparison is the common, pragmatic choice other draft-04 validators
// make and is cheap relative to carrying big.Rat end to end for a
// feature (multipleOf) that draft-04 schemas rarely push to precision
// extremes.
const numericEpsilon = 1e-9

// NumberValidator validates numeric values (spec.md §4.C.2).
type NumberValidator struct {
	HasMin       bool
	Min          float64
	ExclusiveMin bool

	HasMax       bool
	Max          float64
	ExclusiveMax bool

	RequiresInteger bool

	// HasMultipleOf is false when no multipleOf constraint applies.
	// MultipleOf == 0 is treated as AlwaysPass for this keyword
	// (spec.md §9's "warn-and-accept" resolution of the open question).
	HasMultipleOf bool
	MultipleOf    float64
}

// NewNumberValidator constructs a NumberValidator requiring only that
// the value be numeric; chain With* methods to add bounds.
func NewNumberValidator() *NumberValidator { return &NumberValidator{} }

// WithMin returns a copy of n with a lower bound.
func (n NumberValidator) WithMin(min float64, exclusive bool) *NumberValidator {
	n.HasMin, n.Min, n.ExclusiveMin = true, min, exclusive
	return &n
}

// WithMax returns a copy of n with an upper bound.
func (n NumberValidator) WithMax(max float64, exclusive bool) *NumberValidator {
	n.HasMax, n.Max, n.ExclusiveMax = true, max, exclusive
	return &n
}

// WithRequiresInteger returns a copy of n that rejects fractional floats.
func (n NumberValidator) WithRequiresInteger() *NumberValidator {
	n.RequiresInteger = true
	return &n
}

// WithMultipleOf returns a copy of n constrained to multiples of m. The
// sign of m is ignored, per spec.md §4.C.2.
func (n NumberValidator) WithMultipleOf(m float64) *NumberValidator {
	n.HasMultipleOf, n.MultipleOf = true, math.Abs(m)
	return &n
}

// Validate runs the validator against val.
func (n *NumberValidator) Validate(val value.Value) *verror.Error { return n.evaluate(val, 0) }

func (n *NumberValidator) evaluate(val value.Value, _ int) *verror.Error {
	num, ok := val.Number()
	if !ok {
		return verror.New(verror.IncorrectType, n, fmt.Sprintf("expected a number, got %s", val.Kind())).WithValue(val)
	}

	if n.RequiresInteger {
		if _, isInt := val.Int(); !isInt && math.Abs(num-math.Round(num)) > numericEpsilon {
			return verror.New(verror.NonIntegral, n, fmt.Sprintf("%v is not an integer", num)).WithValue(val)
		}
	}

	if n.HasMultipleOf && n.MultipleOf != 0 {
		quotient := num / n.MultipleOf
		if math.Abs(quotient-math.Round(quotient)) > numericEpsilon {
			return verror.New(verror.FormatMismatch, n,
				fmt.Sprintf("%v is not a multiple of %v", num, n.MultipleOf)).WithValue(val)
		}
	}

	if n.HasMin {
		if n.ExclusiveMin {
			if num <= n.Min {
				return verror.New(verror.LessThanMin, n, fmt.Sprintf("%v must be greater than %v", num, n.Min)).WithValue(val)
			}
		} else if num < n.Min {
			return verror.New(verror.LessThanMin, n, fmt.Sprintf("%v must be at least %v", num, n.Min)).WithValue(val)
		}
	}

	if n.HasMax {
		if n.ExclusiveMax {
			if num >= n.Max {
				return verror.New(verror.GreaterThanMax, n, fmt.Sprintf("%v must be less than %v", num, n.Max)).WithValue(val)
			}
		} else if num > n.Max {
			return verror.New(verror.GreaterThanMax, n, fmt.Sprintf("%v must be at most %v", num, n.Max)).WithValue(val)
		}
	}

	return nil
}

// Equal implements Validator.
func (n *NumberValidator) Equal(other Validator) bool {
	o, ok := other.(*NumberValidator)
	if !ok {
		return false
	}
	return n.HasMin == o.HasMin && n.Min == o.Min && n.ExclusiveMin == o.ExclusiveMin &&
		n.HasMax == o.HasMax && n.Max == o.Max && n.ExclusiveMax == o.ExclusiveMax &&
		n.RequiresInteger == o.RequiresInteger &&
		n.HasMultipleOf == o.HasMultipleOf && n.MultipleOf == o.MultipleOf
}
