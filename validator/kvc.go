package validator

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// Entity is any Go value a KeyValueCodingValidator can query for per-key
// validators. Go has no open method dispatch by string name, so lookup is
// done by reflection against a canonicalized method name: for a key
// "first_name" or "firstName", the adapter looks for a zero-argument
// method named "ValidatorsForFirstName" (spec.md §4.C.7, §4.D).
type Entity any

// SelfValidating is implemented by an Entity that wants one last,
// whole-object check after every per-key validator has run (spec.md
// §4.C.7's "self-validate" precedence tier).
type SelfValidating interface {
	ValidateEntity() *verror.Error
}

// KeyValueCodingValidator resolves, for every key in Keys, the validators
// to run against that key's value with instance-first, class-second
// precedence: Instance's ValidatorsFor<Key> method is consulted first; if
// it doesn't exist or returns ok=false, Class's is consulted; if neither
// supplies validators the key passes unconditionally (spec.md §4.C.7).
// After every key has been checked, if Instance or Class (instance takes
// precedence) implements SelfValidating, ValidateEntity runs too.
type KeyValueCodingValidator struct {
	Instance Entity
	Class    Entity
	Keys     []string
}

// NewKeyValueCodingValidator constructs a KeyValueCodingValidator for the
// given keys.
func NewKeyValueCodingValidator(instance, class Entity, keys ...string) *KeyValueCodingValidator {
	return &KeyValueCodingValidator{Instance: instance, Class: class, Keys: keys}
}

// Validate runs the validator against val.
func (kvc *KeyValueCodingValidator) Validate(val value.Value) *verror.Error {
	return kvc.evaluate(val, 0)
}

func (kvc *KeyValueCodingValidator) evaluate(val value.Value, depth int) *verror.Error {
	obj, ok := val.Object()
	if !ok {
		return verror.New(verror.NotAKeyedCollection, kvc, "key-value coding requires an object").WithValue(val)
	}

	errorsByKey := make(map[string][]*verror.Error)
	for _, key := range kvc.Keys {
		validators, found := kvc.resolveValidators(key)
		if !found {
			continue
		}
		keyVal, _ := obj.Get(key)
		if err := absentOrNullKeyError(kvc, keyVal); err != nil {
			errorsByKey[key] = append(errorsByKey[key], err)
			continue
		}
		for _, v := range validators {
			if err := v.evaluate(keyVal, depth); err != nil {
				errorsByKey[key] = append(errorsByKey[key], err)
			}
		}
	}

	if self, ok := kvc.selfValidator(); ok {
		if err := self.ValidateEntity(); err != nil {
			errorsByKey[""] = append(errorsByKey[""], err)
		}
	}

	if len(errorsByKey) == 0 {
		return nil
	}
	return verror.New(verror.KVCError, kvc, "one or more keys failed validation").WithValue(val).WithErrorsByKey(errorsByKey)
}

// absentOrNullKeyError fails a key immediately for an absent or explicit
// null value, before any entity-supplied validator runs (spec.md §4.C.7).
func absentOrNullKeyError(failingValidator any, v value.Value) *verror.Error {
	switch v.Kind() {
	case value.KindAbsent:
		return verror.New(verror.ValueNil, failingValidator, "key's value is absent").WithValue(v)
	case value.KindNull:
		return verror.New(verror.ValueNull, failingValidator, "key's value is null").WithValue(v)
	default:
		return nil
	}
}

// resolveValidators implements the instance-then-class precedence tier.
func (kvc *KeyValueCodingValidator) resolveValidators(key string) ([]Validator, bool) {
	if vs, ok := validatorsForKey(kvc.Instance, key); ok {
		return vs, true
	}
	if vs, ok := validatorsForKey(kvc.Class, key); ok {
		return vs, true
	}
	return nil, false
}

// selfValidator returns whichever of Instance/Class implements
// SelfValidating, instance taking precedence.
func (kvc *KeyValueCodingValidator) selfValidator() (SelfValidating, bool) {
	if sv, ok := kvc.Instance.(SelfValidating); ok {
		return sv, true
	}
	if sv, ok := kvc.Class.(SelfValidating); ok {
		return sv, true
	}
	return nil, false
}

// validatorsForKey calls entity's ValidatorsFor<Key> method, if it has
// one, via reflection. The method may return ([]Validator) or
// ([]Validator, bool); in the one-result form, a nil slice counts as
// "not found" the same way a false second result would.
func validatorsForKey(entity Entity, key string) ([]Validator, bool) {
	if entity == nil {
		return nil, false
	}
	method := reflect.ValueOf(entity).MethodByName("ValidatorsFor" + canonicalizeKey(key))
	if !method.IsValid() {
		return nil, false
	}

	results := method.Call(nil)
	switch len(results) {
	case 1:
		vs, ok := results[0].Interface().([]Validator)
		return vs, ok && vs != nil
	case 2:
		vs, ok1 := results[0].Interface().([]Validator)
		found, ok2 := results[1].Interface().(bool)
		if !ok1 || !ok2 {
			return nil, false
		}
		return vs, found
	default:
		return nil, false
	}
}

// canonicalizeKey turns a snake_case, kebab-case, or camelCase object key
// into the PascalCase fragment Go method-name lookup needs: "first_name"
// and "firstName" both become "FirstName".
func canonicalizeKey(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range parts {
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Equal implements Validator. Entities are compared with reflect.DeepEqual
// since they are arbitrary Go values with no Validator-style Equal method.
func (kvc *KeyValueCodingValidator) Equal(other Validator) bool {
	o, ok := other.(*KeyValueCodingValidator)
	if !ok || len(kvc.Keys) != len(o.Keys) {
		return false
	}
	a, b := append([]string(nil), kvc.Keys...), append([]string(nil), o.Keys...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return reflect.DeepEqual(kvc.Instance, o.Instance) && reflect.DeepEqual(kvc.Class, o.Class)
}
