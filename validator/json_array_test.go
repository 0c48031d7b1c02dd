package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
)

func TestJsonArrayValidatorPresenceAndType(t *testing.T) {
	a := validator.NewJsonArrayValidator(false, false)

	assert.NotNil(t, validator.Validate(a, value.Absent()))
	assert.NotNil(t, validator.Validate(a, value.Null()))
	assert.NotNil(t, validator.Validate(a, value.Int(1)))
	assert.Nil(t, validator.Validate(a, value.Array(nil)))
}

func TestJsonArrayValidatorHomogeneousItems(t *testing.T) {
	item := validator.NewValueValidator(false, false).WithExpectedKind(value.KindInteger)
	a := validator.NewJsonArrayValidator(false, false).WithItemValidator(item)

	ok := value.Array([]value.Value{value.Int(1), value.Int(2)})
	assert.Nil(t, validator.Validate(a, ok))

	bad := value.Array([]value.Value{value.Int(1), value.String("x")})
	err := validator.Validate(a, bad)
	assert.NotNil(t, err)
	assert.Len(t, err.ElementErrors(), 2)
}

func TestJsonArrayValidatorTupleItemsWithAdditional(t *testing.T) {
	tuple := []validator.Validator{
		validator.NewValueValidator(false, false).WithExpectedKind(value.KindString),
		validator.NewValueValidator(false, false).WithExpectedKind(value.KindInteger),
	}
	a := validator.NewJsonArrayValidator(false, false).WithTupleItems(tuple, validator.NewAlwaysFail("no extra items"))

	ok := value.Array([]value.Value{value.String("a"), value.Int(1)})
	assert.Nil(t, validator.Validate(a, ok))

	extra := value.Array([]value.Value{value.String("a"), value.Int(1), value.Bool(true)})
	err := validator.Validate(a, extra)
	assert.NotNil(t, err)
	assert.Len(t, err.ElementErrors(), 3)
	assert.NotNil(t, err.ElementErrors()[2])
}

func TestJsonArrayValidatorUniqueItems(t *testing.T) {
	a := validator.NewJsonArrayValidator(false, false).WithUniqueItems(true)

	unique := value.Array([]value.Value{value.Int(1), value.Int(2)})
	assert.Nil(t, validator.Validate(a, unique))

	dup := value.Array([]value.Value{value.Int(1), value.Float(1.0)})
	assert.NotNil(t, validator.Validate(a, dup))
}

func TestJsonArrayValidatorCountBounds(t *testing.T) {
	a := validator.NewJsonArrayValidator(false, false).WithCount(true, 1, true, 2)

	assert.NotNil(t, validator.Validate(a, value.Array(nil)))
	assert.Nil(t, validator.Validate(a, value.Array([]value.Value{value.Int(1)})))
	assert.NotNil(t, validator.Validate(a, value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)})))
}

func TestJsonArrayValidatorEqual(t *testing.T) {
	item := validator.NewValueValidator(false, false)
	a := validator.NewJsonArrayValidator(false, false).WithItemValidator(item).WithUniqueItems(true)
	b := validator.NewJsonArrayValidator(false, false).WithItemValidator(item).WithUniqueItems(true)
	c := validator.NewJsonArrayValidator(false, false).WithItemValidator(item).WithUniqueItems(false)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
