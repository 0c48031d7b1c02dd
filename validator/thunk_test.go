package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
)

func TestThunkResolvesLazilyAndCaches(t *testing.T) {
	calls := 0
	thunk := validator.NewThunk(func() validator.Validator {
		calls++
		return validator.NewAlwaysPass()
	})

	assert.Equal(t, 0, calls)
	assert.Nil(t, validator.Validate(thunk, value.Int(1)))
	assert.Nil(t, validator.Validate(thunk, value.Int(2)))
	assert.Equal(t, 1, calls)
}

func TestThunkSupportsSelfReferentialCycles(t *testing.T) {
	var self *validator.ThunkValidator
	self = validator.NewThunk(func() validator.Validator {
		return validator.NewOr(validator.NewAlwaysPass(), self)
	})

	assert.Nil(t, validator.Validate(self, value.Int(1)))
}

func TestThunkBoundsUnsatisfiableRecursion(t *testing.T) {
	var self *validator.ThunkValidator
	self = validator.NewThunk(func() validator.Validator {
		return validator.NewAnd(self)
	})

	err := validator.Validate(self, value.Int(1))
	assert.NotNil(t, err)
}
