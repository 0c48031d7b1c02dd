package validator

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// CollectionValidator validates JSON arrays: a count bound plus a
// per-element validator applied to every element with no short-circuit
// (spec.md §3.2, §4.C.5).
type CollectionValidator struct {
	HasMinCount bool
	MinCount    int
	HasMaxCount bool
	MaxCount    int

	// ElementValidator, when non-nil, runs against every element.
	ElementValidator Validator
}

// NewCollectionValidator constructs a CollectionValidator. elementValidator
// may be nil, meaning any element passes.
func NewCollectionValidator(elementValidator Validator) *CollectionValidator {
	return &CollectionValidator{ElementValidator: elementValidator}
}

// WithCount returns a copy of c bounded by element count.
func (c CollectionValidator) WithCount(hasMin bool, min int, hasMax bool, max int) *CollectionValidator {
	c.HasMinCount, c.MinCount, c.HasMaxCount, c.MaxCount = hasMin, min, hasMax, max
	return &c
}

// Validate runs the validator against val.
func (c *CollectionValidator) Validate(val value.Value) *verror.Error { return c.evaluate(val, 0) }

func (c *CollectionValidator) evaluate(val value.Value, depth int) *verror.Error {
	items, ok := val.Items()
	if !ok {
		return verror.New(verror.NotACollection, c, fmt.Sprintf("expected an array, got %s", val.Kind())).WithValue(val)
	}

	var countErr *verror.Error
	n := len(items)
	if c.HasMinCount && n < c.MinCount {
		countErr = verror.New(verror.LessThanMin, c, fmt.Sprintf("count %d is less than minimum %d", n, c.MinCount)).WithValue(val)
	} else if c.HasMaxCount && n > c.MaxCount {
		countErr = verror.New(verror.GreaterThanMax, c, fmt.Sprintf("count %d is greater than maximum %d", n, c.MaxCount)).WithValue(val)
	}

	var elementErrors []*verror.Error
	anyElementFailed := false
	if c.ElementValidator != nil {
		elementErrors = make([]*verror.Error, n)
		for i, item := range items {
			if err := c.ElementValidator.evaluate(item, depth); err != nil {
				elementErrors[i] = err
				anyElementFailed = true
			}
		}
	}

	if countErr == nil && !anyElementFailed {
		return nil
	}

	result := verror.New(verror.CollectionError, c, "collection failed one or more element or count checks").WithValue(val)
	if countErr != nil {
		result = result.WithCount(countErr)
	}
	if anyElementFailed {
		result = result.WithElements(elementErrors)
	}
	return result
}

// Equal implements Validator.
func (c *CollectionValidator) Equal(other Validator) bool {
	o, ok := other.(*CollectionValidator)
	if !ok {
		return false
	}
	if c.HasMinCount != o.HasMinCount || c.MinCount != o.MinCount ||
		c.HasMaxCount != o.HasMaxCount || c.MaxCount != o.MaxCount {
		return false
	}
	if (c.ElementValidator == nil) != (o.ElementValidator == nil) {
		return false
	}
	if c.ElementValidator != nil && !c.ElementValidator.Equal(o.ElementValidator) {
		return false
	}
	return true
}
