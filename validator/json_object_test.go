package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
)

func TestJsonObjectValidatorPresenceAndType(t *testing.T) {
	o := validator.NewJsonObjectValidator(false, false)

	assert.NotNil(t, validator.Validate(o, value.Absent()))
	assert.NotNil(t, validator.Validate(o, value.Null()))
	assert.NotNil(t, validator.Validate(o, value.String("nope")))
	assert.Nil(t, validator.Validate(o, objOf()))
}

func TestJsonObjectValidatorDelegatesToContent(t *testing.T) {
	content := validator.NewKeyedCollectionValidator(nil, nil, nil).WithCount(true, 1, false, 0)
	o := validator.NewJsonObjectValidator(false, false).WithContent(content)

	assert.NotNil(t, validator.Validate(o, objOf()))
	assert.Nil(t, validator.Validate(o, objOf("a", value.Int(1))))
}

func TestJsonObjectValidatorEqual(t *testing.T) {
	content := validator.NewKeyedCollectionValidator(nil, nil, nil)
	a := validator.NewJsonObjectValidator(false, false).WithContent(content)
	b := validator.NewJsonObjectValidator(false, false).WithContent(content)
	c := validator.NewJsonObjectValidator(true, false).WithContent(content)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
