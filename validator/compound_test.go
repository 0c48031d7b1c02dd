package validator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

func TestAndEmptyPassesEverything(t *testing.T) {
	and := validator.NewAnd()
	assert.Nil(t, validator.Validate(and, value.Int(1)))
	assert.Nil(t, validator.Validate(and, value.String("anything")))
}

func TestOrEmptyFailsEverything(t *testing.T) {
	or := validator.NewOr()
	assert.NotNil(t, validator.Validate(or, value.Int(1)))
}

func TestMutualExclusionEmptyFailsEverything(t *testing.T) {
	me := validator.NewMutualExclusion()
	assert.NotNil(t, validator.Validate(me, value.Int(1)))
}

func TestAndRunsEverySubvalidatorNoShortCircuit(t *testing.T) {
	failA := validator.NewAlwaysFail("a")
	failB := validator.NewAlwaysFail("b")
	and := validator.NewAnd(failA, failB)

	err := validator.Validate(and, value.Int(1))
	assert.NotNil(t, err)
	assert.Len(t, err.Underlying(), 2)
}

func TestOrPassesWhenAtLeastOnePasses(t *testing.T) {
	or := validator.NewOr(validator.NewAlwaysFail("no"), validator.NewAlwaysPass())
	assert.Nil(t, validator.Validate(or, value.Int(1)))
}

func TestMutualExclusionPassesOnlyWithExactlyOnePass(t *testing.T) {
	onePass := validator.NewMutualExclusion(validator.NewAlwaysPass(), validator.NewAlwaysFail("no"))
	assert.Nil(t, validator.Validate(onePass, value.Int(1)))

	bothPass := validator.NewMutualExclusion(validator.NewAlwaysPass(), validator.NewAlwaysPass())
	assert.NotNil(t, validator.Validate(bothPass, value.Int(1)))

	nonePass := validator.NewMutualExclusion(validator.NewAlwaysFail("a"), validator.NewAlwaysFail("b"))
	assert.NotNil(t, validator.Validate(nonePass, value.Int(1)))
}

func TestNotDoubleNegationEqualsOriginal(t *testing.T) {
	original := validator.NewAlwaysPass()
	notNot := validator.NewNot(validator.NewNot(original))

	assert.Nil(t, validator.Validate(original, value.Int(1)))
	assert.Nil(t, validator.Validate(notNot, value.Int(1)))

	original2 := validator.NewAlwaysFail("no")
	notNot2 := validator.NewNot(validator.NewNot(original2))
	assert.NotNil(t, validator.Validate(original2, value.Int(1)))
	assert.NotNil(t, validator.Validate(notNot2, value.Int(1)))
}

func TestNotPanicsWithoutSubvalidator(t *testing.T) {
	assert.Panics(t, func() { validator.NewNot(nil) })
}

// TestAndErrorTreeShape diffs the whole error tree And produces against a
// hand-built expectation with cmp.Diff, relying on verror.Error's Equal
// method so go-cmp can compare a tree whose fields are unexported.
func TestAndErrorTreeShape(t *testing.T) {
	failA := validator.NewAlwaysFail("a")
	failB := validator.NewAlwaysFail("b")
	and := validator.NewAnd(failA, failB)

	got := validator.Validate(and, value.Int(1))

	want := verror.New(verror.CompoundError, and, "all subvalidators must pass").
		WithValue(value.Int(1)).
		WithUnderlying(
			verror.New(verror.IncorrectType, failA, "a").WithValue(value.Int(1)),
			verror.New(verror.IncorrectType, failB, "b").WithValue(value.Int(1)),
		)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("error tree mismatch (-want +got):\n%s", diff)
	}
}

func TestCompoundEqual(t *testing.T) {
	a := validator.NewAnd(validator.NewAlwaysPass(), validator.NewAlwaysFail("x"))
	b := validator.NewAnd(validator.NewAlwaysPass(), validator.NewAlwaysFail("x"))
	c := validator.NewOr(validator.NewAlwaysPass(), validator.NewAlwaysFail("x"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
