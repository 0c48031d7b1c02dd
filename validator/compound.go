package validator

import (
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// CompoundKind selects And/Or/Not/MutualExclusion semantics for a
// CompoundValidator (spec.md §3.2, §4.C.4).
type CompoundKind int

const (
	CompoundAnd CompoundKind = iota
	CompoundOr
	CompoundNot
	CompoundMutualExclusion
)

// CompoundValidator composes subvalidators with And/Or/Not/
// MutualExclusion semantics. No variant short-circuits: every
// subvalidator is evaluated against every value, so the returned error
// (if any) carries a complete inventory of what failed (spec.md §4.C.4).
type CompoundValidator struct {
	Kind          CompoundKind
	Subvalidators []Validator
}

// NewAnd constructs an And compound validator. And([]) passes every
// value (spec.md §8).
func NewAnd(subvalidators ...Validator) *CompoundValidator {
	return &CompoundValidator{Kind: CompoundAnd, Subvalidators: subvalidators}
}

// NewOr constructs an Or compound validator. Or([]) fails every value
// (spec.md §8).
func NewOr(subvalidators ...Validator) *CompoundValidator {
	return &CompoundValidator{Kind: CompoundOr, Subvalidators: subvalidators}
}

// NewMutualExclusion constructs a validator that passes iff exactly one
// subvalidator passes. MutualExclusion([]) fails every value (spec.md §8).
func NewMutualExclusion(subvalidators ...Validator) *CompoundValidator {
	return &CompoundValidator{Kind: CompoundMutualExclusion, Subvalidators: subvalidators}
}

// NewNot constructs a validator that passes iff sub fails. It panics if
// sub is nil, since Not requires exactly one subvalidator (spec.md §4.C.4).
func NewNot(sub Validator) *CompoundValidator {
	if sub == nil {
		panic("validator: NewNot requires a non-nil subvalidator")
	}
	return &CompoundValidator{Kind: CompoundNot, Subvalidators: []Validator{sub}}
}

// Validate runs the validator against val.
func (c *CompoundValidator) Validate(val value.Value) *verror.Error { return c.evaluate(val, 0) }

func (c *CompoundValidator) evaluate(val value.Value, depth int) *verror.Error {
	switch c.Kind {
	case CompoundAnd:
		return c.evaluateAnd(val, depth)
	case CompoundOr:
		return c.evaluateOr(val, depth)
	case CompoundMutualExclusion:
		return c.evaluateMutualExclusion(val, depth)
	case CompoundNot:
		return c.evaluateNot(val, depth)
	default:
		return verror.New(verror.CompoundError, c, "unknown compound validator kind").WithValue(val)
	}
}

func (c *CompoundValidator) evaluateAnd(val value.Value, depth int) *verror.Error {
	var failures []*verror.Error
	for _, sub := range c.Subvalidators {
		if err := sub.evaluate(val, depth); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return verror.New(verror.CompoundError, c, "all subvalidators must pass").WithValue(val).WithUnderlying(failures...)
}

func (c *CompoundValidator) evaluateOr(val value.Value, depth int) *verror.Error {
	var failures []*verror.Error
	passed := false
	for _, sub := range c.Subvalidators {
		if err := sub.evaluate(val, depth); err != nil {
			failures = append(failures, err)
		} else {
			passed = true
		}
	}
	if passed {
		return nil
	}
	return verror.New(verror.CompoundError, c, "at least one subvalidator must pass").WithValue(val).WithUnderlying(failures...)
}

func (c *CompoundValidator) evaluateMutualExclusion(val value.Value, depth int) *verror.Error {
	var failures []*verror.Error
	passCount := 0
	for _, sub := range c.Subvalidators {
		if err := sub.evaluate(val, depth); err != nil {
			failures = append(failures, err)
		} else {
			passCount++
		}
	}
	switch passCount {
	case 1:
		return nil
	case 0:
		return verror.New(verror.CompoundError, c, "exactly one subvalidator must pass, none did").WithValue(val).WithUnderlying(failures...)
	default:
		return verror.New(verror.CompoundError, c, "exactly one subvalidator must pass, more than one did").WithValue(val)
	}
}

func (c *CompoundValidator) evaluateNot(val value.Value, depth int) *verror.Error {
	sub := c.Subvalidators[0]
	if err := sub.evaluate(val, depth); err == nil {
		return verror.New(verror.CompoundError, c, "value must not satisfy the negated validator").WithValue(val)
	}
	return nil
}

// Equal implements Validator.
func (c *CompoundValidator) Equal(other Validator) bool {
	o, ok := other.(*CompoundValidator)
	if !ok || c.Kind != o.Kind || len(c.Subvalidators) != len(o.Subvalidators) {
		return false
	}
	for i := range c.Subvalidators {
		if !c.Subvalidators[i].Equal(o.Subvalidators[i]) {
			return false
		}
	}
	return true
}
