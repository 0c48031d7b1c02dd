package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

type nameEntity struct{}

func (nameEntity) ValidatorsForName() []validator.Validator {
	return []validator.Validator{validator.NewValueValidator(false, false).WithExpectedKind(value.KindString)}
}

type snakeCaseEntity struct{}

func (snakeCaseEntity) ValidatorsForFirstName() []validator.Validator {
	return []validator.Validator{validator.NewValueValidator(false, false).WithExpectedKind(value.KindString)}
}

type selfValidatingEntity struct{ fail bool }

func (e selfValidatingEntity) ValidateEntity() *verror.Error {
	if e.fail {
		return verror.New(verror.KVCError, e, "self validation failed")
	}
	return nil
}

func TestKeyValueCodingValidatorInstancePrecedence(t *testing.T) {
	kvc := validator.NewKeyValueCodingValidator(nameEntity{}, nil, "name")

	assert.Nil(t, validator.Validate(kvc, objOf("name", value.String("ok"))))

	err := validator.Validate(kvc, objOf("name", value.Int(1)))
	assert.NotNil(t, err)
	assert.Contains(t, err.ErrorsByKey(), "name")
}

func TestKeyValueCodingValidatorFallsBackToClass(t *testing.T) {
	kvc := validator.NewKeyValueCodingValidator(struct{}{}, nameEntity{}, "name")

	assert.Nil(t, validator.Validate(kvc, objOf("name", value.String("ok"))))
	assert.NotNil(t, validator.Validate(kvc, objOf("name", value.Int(1))))
}

func TestKeyValueCodingValidatorUnknownKeyPasses(t *testing.T) {
	kvc := validator.NewKeyValueCodingValidator(nameEntity{}, nil, "nonexistent")
	assert.Nil(t, validator.Validate(kvc, objOf("nonexistent", value.Int(1))))
}

func TestKeyValueCodingValidatorCanonicalizesSnakeCaseKeys(t *testing.T) {
	kvc := validator.NewKeyValueCodingValidator(snakeCaseEntity{}, nil, "first_name")
	assert.NotNil(t, validator.Validate(kvc, objOf("first_name", value.Int(1))))
	assert.Nil(t, validator.Validate(kvc, objOf("first_name", value.String("ok"))))
}

func TestKeyValueCodingValidatorSelfValidate(t *testing.T) {
	passing := validator.NewKeyValueCodingValidator(selfValidatingEntity{fail: false}, nil)
	assert.Nil(t, validator.Validate(passing, objOf()))

	failing := validator.NewKeyValueCodingValidator(selfValidatingEntity{fail: true}, nil)
	err := validator.Validate(failing, objOf())
	assert.NotNil(t, err)
	assert.Contains(t, err.ErrorsByKey(), "")
}

func TestKeyValueCodingValidatorFailsImmediatelyOnAbsentOrNullKey(t *testing.T) {
	kvc := validator.NewKeyValueCodingValidator(nameEntity{}, nil, "name")

	absentErr := validator.Validate(kvc, objOf())
	assert.NotNil(t, absentErr)
	keyErrs := absentErr.ErrorsByKey()["name"]
	assert.Len(t, keyErrs, 1)
	assert.Equal(t, "value-nil", keyErrs[0].Code())

	nullErr := validator.Validate(kvc, objOf("name", value.Null()))
	assert.NotNil(t, nullErr)
	keyErrs = nullErr.ErrorsByKey()["name"]
	assert.Len(t, keyErrs, 1)
	assert.Equal(t, "value-null", keyErrs[0].Code())
}

func TestKeyValueCodingValidatorRejectsNonObject(t *testing.T) {
	kvc := validator.NewKeyValueCodingValidator(nil, nil)
	err := validator.Validate(kvc, value.Int(1))
	assert.NotNil(t, err)
	assert.Equal(t, "not-a-keyed-collection", err.Code())
}
