package validator

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// KeyedCollectionValidator validates JSON objects: a key/value-pair count
// bound, a validator applied to every key, a validator applied to every
// value, and an optional per-key "pair" validator keyed by the object's
// own key names — all evaluated with no short-circuit (spec.md §3.2,
// §4.C.6).
type KeyedCollectionValidator struct {
	HasMinCount bool
	MinCount    int
	HasMaxCount bool
	MaxCount    int

	// KeyValidator, when non-nil, runs against every key (wrapped as a
	// value.String) in the object.
	KeyValidator Validator

	// ValueValidator, when non-nil, runs against every value in the object.
	ValueValidator Validator

	// PairValidators maps an object key to a validator that runs only
	// against that key's value, letting a schema impose per-property
	// constraints (spec.md §4.C.6, the draft-04 "properties" keyword's
	// natural home).
	PairValidators map[string]Validator
}

// NewKeyedCollectionValidator constructs a KeyedCollectionValidator. Any
// of keyValidator, valueValidator, or pairValidators may be nil/empty.
func NewKeyedCollectionValidator(keyValidator, valueValidator Validator, pairValidators map[string]Validator) *KeyedCollectionValidator {
	return &KeyedCollectionValidator{
		KeyValidator:   keyValidator,
		ValueValidator: valueValidator,
		PairValidators: pairValidators,
	}
}

// WithCount returns a copy of k bounded by key/value-pair count.
func (k KeyedCollectionValidator) WithCount(hasMin bool, min int, hasMax bool, max int) *KeyedCollectionValidator {
	k.HasMinCount, k.MinCount, k.HasMaxCount, k.MaxCount = hasMin, min, hasMax, max
	return &k
}

// Validate runs the validator against val.
func (k *KeyedCollectionValidator) Validate(val value.Value) *verror.Error {
	return k.evaluate(val, 0)
}

func (k *KeyedCollectionValidator) evaluate(val value.Value, depth int) *verror.Error {
	obj, ok := val.Object()
	if !ok {
		return verror.New(verror.NotAKeyedCollection, k, fmt.Sprintf("expected an object, got %s", val.Kind())).WithValue(val)
	}

	var countErr *verror.Error
	n := obj.Len()
	if k.HasMinCount && n < k.MinCount {
		countErr = verror.New(verror.LessThanMin, k, fmt.Sprintf("count %d is less than minimum %d", n, k.MinCount)).WithValue(val)
	} else if k.HasMaxCount && n > k.MaxCount {
		countErr = verror.New(verror.GreaterThanMax, k, fmt.Sprintf("count %d is greater than maximum %d", n, k.MaxCount)).WithValue(val)
	}

	keys := obj.Keys()
	var keyErrors, valueErrors []*verror.Error
	anyKeyFailed, anyValueFailed := false, false

	if k.KeyValidator != nil {
		keyErrors = make([]*verror.Error, len(keys))
		for i, key := range keys {
			if err := k.KeyValidator.evaluate(value.String(key), depth); err != nil {
				keyErrors[i] = err
				anyKeyFailed = true
			}
		}
	}

	if k.ValueValidator != nil {
		valueErrors = make([]*verror.Error, len(keys))
		for i, key := range keys {
			v, _ := obj.Get(key)
			if err := k.ValueValidator.evaluate(v, depth); err != nil {
				valueErrors[i] = err
				anyValueFailed = true
			}
		}
	}

	var pairErrors map[string]*verror.Error
	if len(k.PairValidators) > 0 {
		for key, pv := range k.PairValidators {
			if !obj.Has(key) {
				continue
			}
			v, _ := obj.Get(key)
			if err := pv.evaluate(v, depth); err != nil {
				if pairErrors == nil {
					pairErrors = make(map[string]*verror.Error)
				}
				pairErrors[key] = err
			}
		}
	}

	if countErr == nil && !anyKeyFailed && !anyValueFailed && len(pairErrors) == 0 {
		return nil
	}

	result := verror.New(verror.KeyedCollectionError, k, "keyed collection failed one or more key, value, pair, or count checks").WithValue(val)
	if countErr != nil {
		result = result.WithCount(countErr)
	}
	if anyKeyFailed {
		result = result.WithKeyErrors(keyErrors)
	}
	if anyValueFailed {
		result = result.WithValueErrors(valueErrors)
	}
	if len(pairErrors) > 0 {
		result = result.WithPairErrors(pairErrors)
	}
	return result
}

// Equal implements Validator.
func (k *KeyedCollectionValidator) Equal(other Validator) bool {
	o, ok := other.(*KeyedCollectionValidator)
	if !ok {
		return false
	}
	if k.HasMinCount != o.HasMinCount || k.MinCount != o.MinCount ||
		k.HasMaxCount != o.HasMaxCount || k.MaxCount != o.MaxCount {
		return false
	}
	if !validatorsEqual(k.KeyValidator, o.KeyValidator) || !validatorsEqual(k.ValueValidator, o.ValueValidator) {
		return false
	}
	if len(k.PairValidators) != len(o.PairValidators) {
		return false
	}
	for key, v := range k.PairValidators {
		ov, ok := o.PairValidators[key]
		if !ok || !validatorsEqual(v, ov) {
			return false
		}
	}
	return true
}

// validatorsEqual treats two nil Validators as equal, deferring to
// Validator.Equal only when both are non-nil.
func validatorsEqual(a, b Validator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
