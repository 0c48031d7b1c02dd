package validator

import (
	"reflect"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// BlockFunc is a pure predicate over a value.Value: no side effects, no
// suspension (spec.md §5: "Block validators must be side-effect-free").
type BlockFunc func(value.Value) *verror.Error

// BlockValidator wraps an arbitrary predicate closure (spec.md §3.2,
// §4.C.11). Two BlockValidators are Equal only when they wrap the same
// function value (spec.md §4.C.11: "Block validators are equal only by
// closure identity") — realized here via comparing the underlying
// function pointer, since Go func values aren't otherwise comparable.
type BlockValidator struct {
	fn BlockFunc
}

// NewBlockValidator wraps fn as a Validator.
func NewBlockValidator(fn BlockFunc) *BlockValidator {
	return &BlockValidator{fn: fn}
}

// Validate runs the validator against val.
func (b *BlockValidator) Validate(val value.Value) *verror.Error { return b.evaluate(val, 0) }

func (b *BlockValidator) evaluate(val value.Value, _ int) *verror.Error {
	if b.fn == nil {
		return nil
	}
	return b.fn(val)
}

// Equal implements Validator using function-pointer identity via stdlib
// reflect; see DESIGN.md.
func (b *BlockValidator) Equal(other Validator) bool {
	o, ok := other.(*BlockValidator)
	if !ok {
		return false
	}
	if b.fn == nil || o.fn == nil {
		return b.fn == nil && o.fn == nil
	}
	return reflect.ValueOf(b.fn).Pointer() == reflect.ValueOf(o.fn).Pointer()
}
