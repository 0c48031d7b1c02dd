package validator

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// JsonArrayValidator is the lowered form of a JSON Schema array schema:
// presence/null/type checking, count bounds, tuple-or-homogeneous item
// validation, an additionalItems validator for positions beyond a tuple,
// and a uniqueItems check (spec.md §4.C.9).
type JsonArrayValidator struct {
	AllowNull   bool
	AllowAbsent bool

	HasMinCount bool
	MinCount    int
	HasMaxCount bool
	MaxCount    int

	// ItemValidators, when non-empty, validates each array position
	// against the validator at the same index (draft-04 tuple "items").
	// Positions beyond len(ItemValidators) fall through to AdditionalItems.
	ItemValidators []Validator

	// ItemValidator, when non-nil and ItemValidators is empty, validates
	// every element homogeneously (draft-04 schema-form "items").
	ItemValidator Validator

	// AdditionalItems validates positions beyond ItemValidators when
	// ItemValidators is non-empty; nil means such positions are allowed
	// unconditionally.
	AdditionalItems Validator

	UniqueItems bool
}

// NewJsonArrayValidator constructs a JsonArrayValidator with only
// presence/type checking active.
func NewJsonArrayValidator(allowNull, allowAbsent bool) *JsonArrayValidator {
	return &JsonArrayValidator{AllowNull: allowNull, AllowAbsent: allowAbsent}
}

// WithCount returns a copy of a bounded by element count.
func (a JsonArrayValidator) WithCount(hasMin bool, min int, hasMax bool, max int) *JsonArrayValidator {
	a.HasMinCount, a.MinCount, a.HasMaxCount, a.MaxCount = hasMin, min, hasMax, max
	return &a
}

// WithItemValidator returns a copy of a validating every element
// homogeneously.
func (a JsonArrayValidator) WithItemValidator(v Validator) *JsonArrayValidator {
	a.ItemValidator = v
	return &a
}

// WithTupleItems returns a copy of a validating positionally.
func (a JsonArrayValidator) WithTupleItems(items []Validator, additional Validator) *JsonArrayValidator {
	a.ItemValidators = items
	a.AdditionalItems = additional
	return &a
}

// WithUniqueItems returns a copy of a requiring pairwise-distinct elements.
func (a JsonArrayValidator) WithUniqueItems(unique bool) *JsonArrayValidator {
	a.UniqueItems = unique
	return &a
}

// Validate runs the validator against val.
func (a *JsonArrayValidator) Validate(val value.Value) *verror.Error { return a.evaluate(val, 0) }

func (a *JsonArrayValidator) evaluate(val value.Value, depth int) *verror.Error {
	if val.IsAbsent() {
		if a.AllowAbsent {
			return nil
		}
		return verror.New(verror.ValueNil, a, "value is required").WithValue(val)
	}
	if val.IsNull() {
		if a.AllowNull {
			return nil
		}
		return verror.New(verror.ValueNull, a, "value must not be null").WithValue(val)
	}

	items, ok := val.Items()
	if !ok {
		return verror.New(verror.IncorrectType, a, fmt.Sprintf("expected an array, got %s", val.Kind())).WithValue(val)
	}

	var countErr *verror.Error
	n := len(items)
	if a.HasMinCount && n < a.MinCount {
		countErr = verror.New(verror.LessThanMin, a, fmt.Sprintf("count %d is less than minimum %d", n, a.MinCount)).WithValue(val)
	} else if a.HasMaxCount && n > a.MaxCount {
		countErr = verror.New(verror.GreaterThanMax, a, fmt.Sprintf("count %d is greater than maximum %d", n, a.MaxCount)).WithValue(val)
	}

	elementErrors := make([]*verror.Error, n)
	anyElementFailed := false
	for i, item := range items {
		itemValidator := a.ItemValidator
		if len(a.ItemValidators) > 0 {
			if i < len(a.ItemValidators) {
				itemValidator = a.ItemValidators[i]
			} else {
				itemValidator = a.AdditionalItems
			}
		}
		if itemValidator == nil {
			continue
		}
		if err := itemValidator.evaluate(item, depth); err != nil {
			elementErrors[i] = err
			anyElementFailed = true
		}
	}

	var uniqueErr *verror.Error
	if a.UniqueItems {
		for i := 0; i < len(items) && uniqueErr == nil; i++ {
			for j := i + 1; j < len(items); j++ {
				if value.Equal(items[i], items[j]) {
					uniqueErr = verror.New(verror.NotInSet, a, fmt.Sprintf("elements at positions %d and %d are not unique", i, j)).WithValue(val)
					break
				}
			}
		}
	}

	if countErr == nil && !anyElementFailed && uniqueErr == nil {
		return nil
	}

	result := verror.New(verror.CollectionError, a, "array failed one or more count, item, or uniqueness checks").WithValue(val)
	if countErr != nil {
		result = result.WithCount(countErr)
	}
	if anyElementFailed {
		result = result.WithElements(elementErrors)
	}
	if uniqueErr != nil {
		result = result.WithUnderlying(uniqueErr)
	}
	return result
}

// Equal implements Validator.
func (a *JsonArrayValidator) Equal(other Validator) bool {
	o, ok := other.(*JsonArrayValidator)
	if !ok {
		return false
	}
	if a.AllowNull != o.AllowNull || a.AllowAbsent != o.AllowAbsent ||
		a.HasMinCount != o.HasMinCount || a.MinCount != o.MinCount ||
		a.HasMaxCount != o.HasMaxCount || a.MaxCount != o.MaxCount ||
		a.UniqueItems != o.UniqueItems || len(a.ItemValidators) != len(o.ItemValidators) {
		return false
	}
	for i := range a.ItemValidators {
		if !validatorsEqual(a.ItemValidators[i], o.ItemValidators[i]) {
			return false
		}
	}
	return validatorsEqual(a.ItemValidator, o.ItemValidator) && validatorsEqual(a.AdditionalItems, o.AdditionalItems)
}
