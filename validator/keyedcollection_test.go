package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
)

func objOf(pairs ...any) value.Value {
	o := value.NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return value.Obj(o)
}

func TestKeyedCollectionValidatorRejectsNonObject(t *testing.T) {
	kc := validator.NewKeyedCollectionValidator(nil, nil, nil)
	err := validator.Validate(kc, value.String("nope"))
	assert.NotNil(t, err)
	assert.Equal(t, "not-a-keyed-collection", err.Code())
}

func TestKeyedCollectionValidatorCountBounds(t *testing.T) {
	kc := validator.NewKeyedCollectionValidator(nil, nil, nil).WithCount(true, 1, true, 2)

	assert.NotNil(t, validator.Validate(kc, objOf()))
	assert.Nil(t, validator.Validate(kc, objOf("a", value.Int(1))))
}

func TestKeyedCollectionValidatorValueValidatorNoShortCircuit(t *testing.T) {
	valueValidator := validator.NewValueValidator(false, false).WithExpectedKind(value.KindInteger)
	kc := validator.NewKeyedCollectionValidator(nil, valueValidator, nil)

	obj := objOf("a", value.String("x"), "b", value.Int(2))
	err := validator.Validate(kc, obj)
	assert.NotNil(t, err)
	assert.Len(t, err.ValueErrors(), 2)
}

func TestKeyedCollectionValidatorPairValidators(t *testing.T) {
	nameValidator := validator.NewValueValidator(false, false).WithExpectedKind(value.KindString)
	kc := validator.NewKeyedCollectionValidator(nil, nil, map[string]validator.Validator{"name": nameValidator})

	ok := objOf("name", value.String("ok"))
	assert.Nil(t, validator.Validate(kc, ok))

	bad := objOf("name", value.Int(1))
	err := validator.Validate(kc, bad)
	assert.NotNil(t, err)
	assert.Contains(t, err.PairErrors(), "name")
}

func TestKeyedCollectionValidatorPairValidatorSkipsAbsentKey(t *testing.T) {
	nameValidator := validator.NewValueValidator(false, false).WithExpectedKind(value.KindString)
	kc := validator.NewKeyedCollectionValidator(nil, nil, map[string]validator.Validator{"name": nameValidator})

	absent := objOf("other", value.Int(1))
	assert.Nil(t, validator.Validate(kc, absent))
}

func TestKeyedCollectionValidatorEqual(t *testing.T) {
	kv := validator.NewValueValidator(false, false)
	a := validator.NewKeyedCollectionValidator(kv, kv, map[string]validator.Validator{"x": kv})
	b := validator.NewKeyedCollectionValidator(kv, kv, map[string]validator.Validator{"x": kv})
	c := validator.NewKeyedCollectionValidator(kv, kv, nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
