package validator

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// JsonObjectValidator is the lowered form of a bare object constraint:
// presence/null/type checking plus an optional KeyedCollectionValidator
// for count/key/value/pair content (spec.md §4.C.8).
// JsonObjectSchemaValidator embeds one of these and layers draft-04's
// properties/patternProperties/additionalProperties/dependencies
// semantics on top.
type JsonObjectValidator struct {
	AllowNull   bool
	AllowAbsent bool
	Content     *KeyedCollectionValidator
}

// NewJsonObjectValidator constructs a JsonObjectValidator with only
// presence/type checking active.
func NewJsonObjectValidator(allowNull, allowAbsent bool) *JsonObjectValidator {
	return &JsonObjectValidator{AllowNull: allowNull, AllowAbsent: allowAbsent}
}

// WithContent returns a copy of o that also runs content against the
// object once presence/type checks have passed.
func (o JsonObjectValidator) WithContent(content *KeyedCollectionValidator) *JsonObjectValidator {
	o.Content = content
	return &o
}

// Validate runs the validator against val.
func (o *JsonObjectValidator) Validate(val value.Value) *verror.Error { return o.evaluate(val, 0) }

func (o *JsonObjectValidator) evaluate(val value.Value, depth int) *verror.Error {
	if val.IsAbsent() {
		if o.AllowAbsent {
			return nil
		}
		return verror.New(verror.ValueNil, o, "value is required").WithValue(val)
	}
	if val.IsNull() {
		if o.AllowNull {
			return nil
		}
		return verror.New(verror.ValueNull, o, "value must not be null").WithValue(val)
	}
	if _, ok := val.Object(); !ok {
		return verror.New(verror.IncorrectType, o, fmt.Sprintf("expected an object, got %s", val.Kind())).WithValue(val)
	}
	if o.Content == nil {
		return nil
	}
	return o.Content.evaluate(val, depth)
}

// Equal implements Validator.
func (o *JsonObjectValidator) Equal(other Validator) bool {
	p, ok := other.(*JsonObjectValidator)
	if !ok || o.AllowNull != p.AllowNull || o.AllowAbsent != p.AllowAbsent {
		return false
	}
	if (o.Content == nil) != (p.Content == nil) {
		return false
	}
	if o.Content != nil && !o.Content.Equal(p.Content) {
		return false
	}
	return true
}
