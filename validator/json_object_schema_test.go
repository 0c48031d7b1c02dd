package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
)

func TestJsonObjectSchemaValidatorRequired(t *testing.T) {
	s := validator.NewJsonObjectSchemaValidator(false, false).WithRequired([]string{"name"})

	assert.NotNil(t, validator.Validate(s, objOf()))
	assert.Nil(t, validator.Validate(s, objOf("name", value.String("a"))))
}

func TestJsonObjectSchemaValidatorProperties(t *testing.T) {
	nameValidator := validator.NewValueValidator(false, false).WithExpectedKind(value.KindString)
	s := validator.NewJsonObjectSchemaValidator(false, false).WithProperties(map[string]validator.Validator{"name": nameValidator})

	assert.Nil(t, validator.Validate(s, objOf("name", value.String("a"))))

	err := validator.Validate(s, objOf("name", value.Int(1)))
	assert.NotNil(t, err)
	assert.Contains(t, err.PairErrors(), "name")
}

func TestJsonObjectSchemaValidatorPatternProperties(t *testing.T) {
	re := regexp.MustCompile(`^x-`)
	pp := validator.PatternPropertyValidator{
		Pattern:   re,
		Validator: validator.NewValueValidator(false, false).WithExpectedKind(value.KindString),
	}
	s := validator.NewJsonObjectSchemaValidator(false, false).WithPatternProperties([]validator.PatternPropertyValidator{pp})

	assert.Nil(t, validator.Validate(s, objOf("x-custom", value.String("a"))))
	assert.NotNil(t, validator.Validate(s, objOf("x-custom", value.Int(1))))
}

func TestJsonObjectSchemaValidatorAdditionalPropertiesFalse(t *testing.T) {
	nameValidator := validator.NewValueValidator(false, false).WithExpectedKind(value.KindString)
	s := validator.NewJsonObjectSchemaValidator(false, false).
		WithProperties(map[string]validator.Validator{"name": nameValidator}).
		WithAdditionalProperties(validator.NewAlwaysFail("additional properties are not allowed"))

	assert.Nil(t, validator.Validate(s, objOf("name", value.String("a"))))

	err := validator.Validate(s, objOf("name", value.String("a"), "extra", value.Int(1)))
	assert.NotNil(t, err)
	assert.Contains(t, err.PairErrors(), "extra")
	assert.NotContains(t, err.PairErrors(), "name")
}

func TestJsonObjectSchemaValidatorPropertyDependency(t *testing.T) {
	s := validator.NewJsonObjectSchemaValidator(false, false).WithDependencies([]validator.Dependency{
		{Key: "creditCard", RequiredKeys: []string{"billingAddress"}},
	})

	assert.Nil(t, validator.Validate(s, objOf("other", value.Int(1))))
	assert.NotNil(t, validator.Validate(s, objOf("creditCard", value.String("1234"))))
	assert.Nil(t, validator.Validate(s, objOf("creditCard", value.String("1234"), "billingAddress", value.String("x"))))
}

func TestJsonObjectSchemaValidatorSchemaDependency(t *testing.T) {
	s := validator.NewJsonObjectSchemaValidator(false, false).WithDependencies([]validator.Dependency{
		{Key: "creditCard", SchemaDependency: validator.NewJsonObjectSchemaValidator(false, false).WithRequired([]string{"billingAddress"})},
	})

	assert.Nil(t, validator.Validate(s, objOf("other", value.Int(1))))
	assert.NotNil(t, validator.Validate(s, objOf("creditCard", value.String("1234"))))
}

func TestJsonObjectSchemaValidatorEqual(t *testing.T) {
	props := map[string]validator.Validator{"name": validator.NewValueValidator(false, false)}
	a := validator.NewJsonObjectSchemaValidator(false, false).WithRequired([]string{"name"}).WithProperties(props)
	b := validator.NewJsonObjectSchemaValidator(false, false).WithRequired([]string{"name"}).WithProperties(props)
	c := validator.NewJsonObjectSchemaValidator(false, false).WithRequired([]string{"other"}).WithProperties(props)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
