package validator

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// PatternPropertyValidator pairs a compiled regular expression with the
// validator that must hold for every object key matching it (JSON Schema
// draft-04's "patternProperties", spec.md §4.C.10).
type PatternPropertyValidator struct {
	Pattern   *regexp.Regexp
	Validator Validator
}

// Dependency is one draft-04 "dependencies" entry for Key: either a list
// of other keys that must also be present (RequiredKeys, the "property
// dependency" form), or a whole-object validator that must hold whenever
// Key is present (SchemaDependency, the "schema dependency" form). Only
// one of the two is populated.
type Dependency struct {
	Key              string
	RequiredKeys     []string
	SchemaDependency Validator
}

// JsonObjectSchemaValidator is the lowered form of a draft-04 object
// schema: presence/type checking, required-key presence, "properties",
// "patternProperties", "additionalProperties", and "dependencies"
// (spec.md §4.C.10).
type JsonObjectSchemaValidator struct {
	Base *JsonObjectValidator

	Required []string

	// Properties maps an object key to the validator that must hold for
	// its value when present.
	Properties map[string]Validator

	PatternProperties []PatternPropertyValidator

	// AdditionalProperties validates every key matched by neither
	// Properties nor PatternProperties. Nil allows such keys
	// unconditionally; use NewAlwaysFail to forbid them entirely.
	AdditionalProperties Validator

	Dependencies []Dependency
}

// NewJsonObjectSchemaValidator constructs a JsonObjectSchemaValidator with
// only presence/type checking active.
func NewJsonObjectSchemaValidator(allowNull, allowAbsent bool) *JsonObjectSchemaValidator {
	return &JsonObjectSchemaValidator{Base: NewJsonObjectValidator(allowNull, allowAbsent)}
}

// WithRequired returns a copy of s requiring every key in keys to be present.
func (s JsonObjectSchemaValidator) WithRequired(keys []string) *JsonObjectSchemaValidator {
	s.Required = keys
	return &s
}

// WithProperties returns a copy of s validating named properties.
func (s JsonObjectSchemaValidator) WithProperties(props map[string]Validator) *JsonObjectSchemaValidator {
	s.Properties = props
	return &s
}

// WithPatternProperties returns a copy of s validating pattern-matched properties.
func (s JsonObjectSchemaValidator) WithPatternProperties(pps []PatternPropertyValidator) *JsonObjectSchemaValidator {
	s.PatternProperties = pps
	return &s
}

// WithAdditionalProperties returns a copy of s constraining unmatched keys.
func (s JsonObjectSchemaValidator) WithAdditionalProperties(v Validator) *JsonObjectSchemaValidator {
	s.AdditionalProperties = v
	return &s
}

// WithDependencies returns a copy of s enforcing property/schema dependencies.
func (s JsonObjectSchemaValidator) WithDependencies(deps []Dependency) *JsonObjectSchemaValidator {
	s.Dependencies = deps
	return &s
}

// Validate runs the validator against val.
func (s *JsonObjectSchemaValidator) Validate(val value.Value) *verror.Error {
	return s.evaluate(val, 0)
}

func (s *JsonObjectSchemaValidator) evaluate(val value.Value, depth int) *verror.Error {
	if err := s.Base.evaluate(val, depth); err != nil {
		return err
	}
	obj, ok := val.Object()
	if !ok {
		// Base already permitted absence or null; nothing further to check.
		return nil
	}

	var underlying []*verror.Error
	pairErrors := make(map[string]*verror.Error)

	for _, key := range s.Required {
		if !obj.Has(key) {
			underlying = append(underlying, verror.New(verror.KeyedCollectionError, s, fmt.Sprintf("required key %q is missing", key)).WithValue(val))
		}
	}

	matched := make(map[string]bool, obj.Len())
	for _, key := range obj.Keys() {
		keyVal, _ := obj.Get(key)

		if pv, ok := s.Properties[key]; ok {
			matched[key] = true
			if err := pv.evaluate(keyVal, depth); err != nil {
				pairErrors[key] = err
			}
		}
		for _, pp := range s.PatternProperties {
			if pp.Pattern == nil || !pp.Pattern.MatchString(key) {
				continue
			}
			matched[key] = true
			if err := pp.Validator.evaluate(keyVal, depth); err != nil {
				if existing := pairErrors[key]; existing != nil {
					existing.WithUnderlying(err)
				} else {
					pairErrors[key] = err
				}
			}
		}
	}

	if s.AdditionalProperties != nil {
		for _, key := range obj.Keys() {
			if matched[key] {
				continue
			}
			keyVal, _ := obj.Get(key)
			if err := s.AdditionalProperties.evaluate(keyVal, depth); err != nil {
				pairErrors[key] = err
			}
		}
	}

	for _, dep := range s.Dependencies {
		if !obj.Has(dep.Key) {
			continue
		}
		if dep.SchemaDependency != nil {
			if err := dep.SchemaDependency.evaluate(val, depth); err != nil {
				underlying = append(underlying, err)
			}
			continue
		}
		for _, required := range dep.RequiredKeys {
			if !obj.Has(required) {
				underlying = append(underlying, verror.New(verror.KeyedCollectionError, s, fmt.Sprintf("key %q requires key %q", dep.Key, required)).WithValue(val))
			}
		}
	}

	if len(underlying) == 0 && len(pairErrors) == 0 {
		return nil
	}

	result := verror.New(verror.KeyedCollectionError, s, "object failed one or more schema checks").WithValue(val)
	if len(underlying) > 0 {
		result = result.WithUnderlying(underlying...)
	}
	if len(pairErrors) > 0 {
		result = result.WithPairErrors(pairErrors)
	}
	return result
}

// Equal implements Validator.
func (s *JsonObjectSchemaValidator) Equal(other Validator) bool {
	o, ok := other.(*JsonObjectSchemaValidator)
	if !ok || !s.Base.Equal(o.Base) {
		return false
	}
	if !sameStringSet(s.Required, o.Required) {
		return false
	}
	if len(s.Properties) != len(o.Properties) {
		return false
	}
	for key, v := range s.Properties {
		ov, ok := o.Properties[key]
		if !ok || !validatorsEqual(v, ov) {
			return false
		}
	}
	if len(s.PatternProperties) != len(o.PatternProperties) {
		return false
	}
	for i := range s.PatternProperties {
		a, b := s.PatternProperties[i], o.PatternProperties[i]
		if (a.Pattern == nil) != (b.Pattern == nil) {
			return false
		}
		if a.Pattern != nil && a.Pattern.String() != b.Pattern.String() {
			return false
		}
		if !validatorsEqual(a.Validator, b.Validator) {
			return false
		}
	}
	if !validatorsEqual(s.AdditionalProperties, o.AdditionalProperties) {
		return false
	}
	if len(s.Dependencies) != len(o.Dependencies) {
		return false
	}
	for i := range s.Dependencies {
		a, b := s.Dependencies[i], o.Dependencies[i]
		if a.Key != b.Key || !sameStringSet(a.RequiredKeys, b.RequiredKeys) || !validatorsEqual(a.SchemaDependency, b.SchemaDependency) {
			return false
		}
	}
	return true
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append([]string(nil), a...), append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
