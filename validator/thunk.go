package validator

import (
	"fmt"
	"sync"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// ThunkValidator lazily resolves to another Validator the first time it
// is evaluated, rather than when it is constructed. Lowering a schema
// graph that contains a $ref cycle would otherwise recurse forever while
// building validators; a Thunk breaks the cycle by deferring resolution
// until evaluation time and bounding recursive evaluation by depth
// instead (spec.md §9's two-phase reference resolution).
//
// ThunkValidator must live in package validator, not package schema:
// Validator's evaluate method is unexported, and Go scopes unexported
// interface methods to the declaring package, so only a type defined
// here can ever satisfy Validator directly.
type ThunkValidator struct {
	once    sync.Once
	resolve func() Validator
	target  Validator
}

// NewThunk wraps resolve, a func that produces the validator this thunk
// stands in for. resolve is called at most once.
func NewThunk(resolve func() Validator) *ThunkValidator {
	return &ThunkValidator{resolve: resolve}
}

func (t *ThunkValidator) resolveTarget() Validator {
	t.once.Do(func() {
		t.target = t.resolve()
	})
	return t.target
}

// Validate runs the validator against val.
func (t *ThunkValidator) Validate(val value.Value) *verror.Error { return t.evaluate(val, 0) }

func (t *ThunkValidator) evaluate(val value.Value, depth int) *verror.Error {
	if depth >= defaultMaxRecursionDepth {
		return verror.New(verror.CompoundError, t, fmt.Sprintf("$ref recursion exceeded the maximum depth of %d", defaultMaxRecursionDepth)).WithValue(val)
	}
	target := t.resolveTarget()
	if target == nil {
		return nil
	}
	return target.evaluate(val, depth+1)
}

// Equal implements Validator by comparing resolved targets. Two thunks
// that are part of the same reference cycle will resolve each other
// during this call; callers comparing cyclic schemas should expect Equal
// to do real (bounded) work rather than a cheap pointer check.
func (t *ThunkValidator) Equal(other Validator) bool {
	o, ok := other.(*ThunkValidator)
	if !ok {
		return false
	}
	if t == o {
		return true
	}
	target, otherTarget := t.resolveTarget(), o.resolveTarget()
	if target == nil || otherTarget == nil {
		return target == nil && otherTarget == nil
	}
	return target.Equal(otherTarget)
}
