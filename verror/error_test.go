package verror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

func TestErrorBuilders(t *testing.T) {
	e := verror.New(verror.LessThanMin, "age-validator", "too small").
		WithValue(value.Int(-3)).
		WithCode("less-than-min:minimum")

	assert.Equal(t, verror.LessThanMin, e.Kind())
	assert.Equal(t, "less-than-min:minimum", e.Code())
	assert.Equal(t, "too small", e.Error())

	v, ok := e.ValidatedValue()
	assert.True(t, ok)
	i, _ := v.Int()
	assert.Equal(t, int64(-3), i)
}

func TestErrorFlatten(t *testing.T) {
	a := verror.New(verror.LessThanMin, nil, "a")
	b := verror.New(verror.GreaterThanMax, nil, "b")
	compound := verror.New(verror.CompoundError, nil, "and failed").WithUnderlying(a, b)

	flat := compound.Flatten()
	assert.Len(t, flat, 3)
	assert.Same(t, compound, flat[0])
}

func TestErrorDefaultCodeIsKind(t *testing.T) {
	e := verror.New(verror.NotInSet, nil, "nope")
	assert.Equal(t, "not-in-set", e.Code())
}
