package validator

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// ValueSetValidator passes iff the value is absent (when allowed) or
// deep-equal (value.Equal) to one of a finite set of allowed values
// (spec.md §3.2, §4.C.11).
type ValueSetValidator struct {
	Allowed     []value.Value
	AllowAbsent bool
}

// NewValueSetValidator constructs a ValueSetValidator over allowed.
func NewValueSetValidator(allowAbsent bool, allowed ...value.Value) *ValueSetValidator {
	return &ValueSetValidator{Allowed: allowed, AllowAbsent: allowAbsent}
}

// Validate runs the validator against val.
func (vs *ValueSetValidator) Validate(val value.Value) *verror.Error { return vs.evaluate(val, 0) }

func (vs *ValueSetValidator) evaluate(val value.Value, _ int) *verror.Error {
	if val.IsAbsent() && vs.AllowAbsent {
		return nil
	}
	for _, candidate := range vs.Allowed {
		if value.Equal(candidate, val) {
			return nil
		}
	}
	return verror.New(verror.NotInSet, vs, fmt.Sprintf("value is not one of the %d allowed values", len(vs.Allowed))).WithValue(val)
}

// Equal implements Validator.
func (vs *ValueSetValidator) Equal(other Validator) bool {
	o, ok := other.(*ValueSetValidator)
	if !ok || vs.AllowAbsent != o.AllowAbsent || len(vs.Allowed) != len(o.Allowed) {
		return false
	}
	for i := range vs.Allowed {
		if !value.Equal(vs.Allowed[i], o.Allowed[i]) {
			return false
		}
	}
	return true
}
