package validator

import (
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// AlwaysPassValidator is a terminal that never fails, used during
// lowering wherever a keyword is absent (spec.md §3.2, §4.H).
type AlwaysPassValidator struct{}

// NewAlwaysPass returns the AlwaysPassValidator singleton-ish value.
func NewAlwaysPass() *AlwaysPassValidator { return &AlwaysPassValidator{} }

// Validate always returns nil.
func (*AlwaysPassValidator) Validate(value.Value) *verror.Error { return nil }

func (*AlwaysPassValidator) evaluate(value.Value, int) *verror.Error { return nil }

// Equal implements Validator.
func (*AlwaysPassValidator) Equal(other Validator) bool {
	_, ok := other.(*AlwaysPassValidator)
	return ok
}

// AlwaysFailValidator is a terminal that never passes, used during
// lowering for schemas like `"additionalProperties": false` (spec.md §3.2).
type AlwaysFailValidator struct {
	Message string
}

// NewAlwaysFail returns an AlwaysFailValidator with the given message.
func NewAlwaysFail(message string) *AlwaysFailValidator {
	if message == "" {
		message = "value is never allowed here"
	}
	return &AlwaysFailValidator{Message: message}
}

// Validate always returns a verror.Error.
func (a *AlwaysFailValidator) Validate(v value.Value) *verror.Error { return a.evaluate(v, 0) }

func (a *AlwaysFailValidator) evaluate(v value.Value, _ int) *verror.Error {
	return verror.New(verror.IncorrectType, a, a.Message).WithValue(v)
}

// Equal implements Validator.
func (a *AlwaysFailValidator) Equal(other Validator) bool {
	o, ok := other.(*AlwaysFailValidator)
	return ok && a.Message == o.Message
}
