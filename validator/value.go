package validator

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// ValueValidator is the class/type-check validator (spec.md §4.C.1): it
// rejects absent or null values unless explicitly allowed, and rejects
// values whose Kind doesn't match ExpectedKind when one is set.
type ValueValidator struct {
	AllowNull   bool
	AllowAbsent bool
	// ExpectedKind, when HasExpectedKind is true, is the only Kind this
	// validator accepts (besides null/absent per the Allow* flags).
	ExpectedKind    value.Kind
	HasExpectedKind bool
}

// NewValueValidator constructs a ValueValidator with no type constraint;
// use WithExpectedKind to add one.
func NewValueValidator(allowNull, allowAbsent bool) *ValueValidator {
	return &ValueValidator{AllowNull: allowNull, AllowAbsent: allowAbsent}
}

// WithExpectedKind returns a copy of v constrained to only accept values
// of the given Kind (besides null/absent, which are governed by the
// Allow* flags regardless of ExpectedKind).
func (v ValueValidator) WithExpectedKind(k value.Kind) *ValueValidator {
	v.ExpectedKind = k
	v.HasExpectedKind = true
	return &v
}

// Validate runs the validator against val; see package doc for the
// general contract.
func (v *ValueValidator) Validate(val value.Value) *verror.Error { return v.evaluate(val, 0) }

func (v *ValueValidator) evaluate(val value.Value, _ int) *verror.Error {
	if val.IsAbsent() {
		if v.AllowAbsent {
			return nil
		}
		return verror.New(verror.ValueNil, v, "value is absent").WithValue(val)
	}
	if val.IsNull() {
		if v.AllowNull {
			return nil
		}
		return verror.New(verror.ValueNull, v, "value is null").WithValue(val)
	}
	if v.HasExpectedKind && val.Kind() != v.ExpectedKind {
		return verror.New(verror.IncorrectType, v,
			fmt.Sprintf("expected %s, got %s", v.ExpectedKind, val.Kind())).WithValue(val)
	}
	return nil
}

// Equal implements Validator.
func (v *ValueValidator) Equal(other Validator) bool {
	o, ok := other.(*ValueValidator)
	if !ok {
		return false
	}
	return v.AllowNull == o.AllowNull &&
		v.AllowAbsent == o.AllowAbsent &&
		v.HasExpectedKind == o.HasExpectedKind &&
		(!v.HasExpectedKind || v.ExpectedKind == o.ExpectedKind)
}
