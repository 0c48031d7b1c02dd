package localize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prachigauriar/twvalidation/localize"
	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

func newBundle(t *testing.T) *localize.Bundle {
	t.Helper()
	b, err := localize.New()
	require.NoError(t, err)
	return b
}

func TestLocalizeFallsBackToMessageForUnknownCode(t *testing.T) {
	b := newBundle(t)
	en := b.NewLocalizer("en")

	err := verror.New(verror.ValueNil, nil, "value is required").WithCode("a-code-no-locale-defines")
	require.Equal(t, "value is required", en.Localize(err))
}

func TestLocalizeTemplatesKnownCodeFromMessage(t *testing.T) {
	b := newBundle(t)
	en := b.NewLocalizer("en")

	err := verror.New(verror.ValueNil, nil, "value is required")
	require.Equal(t, "value is required", en.Localize(err))
}

func TestLocalizeTranslatesKnownCode(t *testing.T) {
	b := newBundle(t)
	en := b.NewLocalizer("en")
	zh := b.NewLocalizer("zh-Hans")

	err := verror.New(verror.NonIntegral, nil, "5.5 is not an integer")
	require.Equal(t, "the value must be a whole number", en.Localize(err))
	require.Contains(t, zh.Localize(err), "整数")
}

func TestLocalizeOnCompoundErrorCount(t *testing.T) {
	b := newBundle(t)
	en := b.NewLocalizer("en")

	nv := validator.NewNumberValidator().WithMin(10, false).WithMax(20, false)
	sv := validator.NewStringValidator().WithLength(true, 1, false, 0)
	and := validator.NewAnd(nv, sv)

	err := and.Validate(value.Int(5))
	require.NotNil(t, err)
	msg := en.Localize(err)
	require.True(t, strings.Contains(msg, "rule"))
}

func TestDetailsWalksNestedObjectErrors(t *testing.T) {
	b := newBundle(t)
	en := b.NewLocalizer("en")

	ov := validator.NewJsonObjectSchemaValidator(true, true).
		WithRequired([]string{"name"}).
		WithProperties(map[string]validator.Validator{
			"name": validator.NewStringValidator().WithLength(true, 3, false, 0),
		})

	obj := value.NewObject()
	obj.Set("name", value.String("ab"))

	err := ov.Validate(value.Obj(obj))
	require.NotNil(t, err)

	details := localize.Details(en, err)
	require.NotEmpty(t, details)

	var sawName bool
	for _, d := range details {
		if d.Path == "name" {
			sawName = true
		}
	}
	require.True(t, sawName, "expected a detail localized at path \"name\", got %+v", details)
}
