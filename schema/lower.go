package schema

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// lowerContext memoizes already-lowered nodes by identity, so a
// definition referenced by several $refs is lowered once and a Reference
// node always becomes a ThunkValidator — cheap even when the reference
// isn't actually part of a cycle (spec.md §4.H).
type lowerContext struct {
	cache map[*Node]validator.Validator
}

// Lower turns a parsed, reference-resolved AST into a Validator (spec.md
// §4.H): common keywords (enum/allOf/anyOf/oneOf/not) combine with
// type-specific checks under an implicit And, with AlwaysPass standing
// in for whichever keywords are absent.
func Lower(n *Node) validator.Validator {
	return (&lowerContext{cache: make(map[*Node]validator.Validator)}).lower(n)
}

func (c *lowerContext) lower(n *Node) validator.Validator {
	if n == nil {
		return validator.NewAlwaysPass()
	}
	if v, ok := c.cache[n]; ok {
		return v
	}

	switch n.Kind {
	case NodeBooleanValue:
		if n.BooleanValue {
			return validator.NewAlwaysPass()
		}
		return validator.NewAlwaysFail("schema is `false`: no value satisfies it")
	case NodeReference:
		thunk := validator.NewThunk(func() validator.Validator {
			return c.lower(n.ResolvedReference)
		})
		c.cache[n] = thunk
		return thunk
	}

	var parts []validator.Validator

	if len(n.EnumValues) > 0 {
		parts = append(parts, validator.NewValueSetValidator(false, n.EnumValues...))
	}
	if len(n.AllOf) > 0 {
		parts = append(parts, validator.NewAnd(c.lowerAll(n.AllOf)...))
	}
	if len(n.AnyOf) > 0 {
		parts = append(parts, validator.NewOr(c.lowerAll(n.AnyOf)...))
	}
	if len(n.OneOf) > 0 {
		parts = append(parts, validator.NewMutualExclusion(c.lowerAll(n.OneOf)...))
	}
	if n.Not != nil {
		parts = append(parts, validator.NewNot(c.lower(n.Not)))
	}

	if typed := c.lowerTyped(n); typed != nil {
		parts = append(parts, typed)
	}

	var result validator.Validator
	switch len(parts) {
	case 0:
		result = validator.NewAlwaysPass()
	case 1:
		result = parts[0]
	default:
		result = validator.NewAnd(parts...)
	}

	c.cache[n] = result
	return result
}

func (c *lowerContext) lowerAll(nodes []*Node) []validator.Validator {
	out := make([]validator.Validator, len(nodes))
	for i, child := range nodes {
		out[i] = c.lower(child)
	}
	return out
}

// lowerTyped builds the single validator that dispatches on the
// instance's runtime kind: the declared "type" keyword (if any) is
// checked first, then whichever of the numeric/string/array/object
// keyword families the node actually carries runs against a matching
// instance. A family whose keywords are absent contributes nothing, and
// a family that doesn't match the instance's kind is skipped rather than
// failed — every draft-04 validation keyword applies only to instances
// of the kind it addresses (spec.md §6.1, §4.F's Ambiguous-node rule).
//
// A node whose declared type is confined to one family and whose only
// keyword family is that same family (the ordinary case) returns that
// family's validator directly, preserving correct $ref
// recursion-depth threading through it. Only a genuinely ambiguous node
// — multiple families can each legitimately apply, depending on the
// instance's runtime kind — falls back to a BlockValidator fork; see
// DESIGN.md for why that fork can't thread recursion depth to a Thunk
// nested beneath it (BlockFunc is deliberately depth-unaware, spec.md §5).
func (c *lowerContext) lowerTyped(n *Node) validator.Validator {
	numberV := c.lowerNumber(n)
	stringV := c.lowerString(n)
	arrayV := c.lowerArray(n)
	objectV := c.lowerObject(n)

	present := 0
	var sole validator.Validator
	if numberV != nil {
		present++
		sole = numberV
	}
	if stringV != nil {
		present++
		sole = stringV
	}
	if arrayV != nil {
		present++
		sole = arrayV
	}
	if objectV != nil {
		present++
		sole = objectV
	}

	// Only a node whose declared type resolved to exactly one of these
	// four kinds can skip the dispatcher: a family present without a
	// matching explicit type (e.g. "minLength" with no "type" at all)
	// must still be skipped, not enforced, against a non-string
	// instance, and only the dispatcher does that.
	singleTyped := (n.Kind == NodeNumber && numberV != nil) || (n.Kind == NodeString && stringV != nil) ||
		(n.Kind == NodeArray && arrayV != nil) || (n.Kind == NodeObject && objectV != nil)
	if present == 1 && singleTyped {
		return sole
	}
	if present == 0 && !n.TypeIsExplicit {
		return nil
	}

	return validator.NewBlockValidator(func(val value.Value) *verror.Error {
		return evaluateTyped(n, val, numberV, stringV, arrayV, objectV)
	})
}

// evaluateTyped is the BlockFunc body lowerTyped builds: it never
// short-circuits a type failure against a family check that wouldn't
// apply anyway, since at most one of numberV/stringV/arrayV/objectV ever
// matches a concrete instance's single runtime kind.
func evaluateTyped(n *Node, val value.Value, numberV *validator.NumberValidator, stringV *validator.StringValidator, arrayV *validator.JsonArrayValidator, objectV *validator.JsonObjectSchemaValidator) *verror.Error {
	if n.TypeIsExplicit && !valueMatchesTypes(val, n.ValidTypes) {
		return verror.New(verror.IncorrectType, n, fmt.Sprintf("value of kind %s is not one of the declared types", val.Kind())).WithValue(val)
	}

	switch {
	case numberV != nil && isNumberValue(val):
		return numberV.Validate(val)
	case stringV != nil && val.Kind() == value.KindString:
		return stringV.Validate(val)
	case arrayV != nil && val.Kind() == value.KindArray:
		return arrayV.Validate(val)
	case objectV != nil && val.Kind() == value.KindObject:
		return objectV.Validate(val)
	}
	return nil
}

func isNumberValue(val value.Value) bool {
	_, ok := val.Number()
	return ok
}

// requiresIntegerFor reports whether the declared type set, if any,
// confines numeric instances to integers only (spec.md §4.F: "If all
// types share a family, produce the number node with requires_integer
// reflecting the strongest constraint").
func requiresIntegerFor(n *Node) bool {
	return n.TypeIsExplicit && hasType(n.ValidTypes, TypeInteger) && !hasType(n.ValidTypes, TypeNumber)
}

func (c *lowerContext) lowerNumber(n *Node) *validator.NumberValidator {
	if !n.HasMinimum && !n.HasMaximum && !n.HasMultipleOf && !requiresIntegerFor(n) {
		return nil
	}
	nv := validator.NewNumberValidator()
	if n.HasMinimum {
		nv = nv.WithMin(n.Minimum, n.ExclusiveMinimum)
	}
	if n.HasMaximum {
		nv = nv.WithMax(n.Maximum, n.ExclusiveMaximum)
	}
	if requiresIntegerFor(n) {
		nv = nv.WithRequiresInteger()
	}
	if n.HasMultipleOf {
		nv = nv.WithMultipleOf(n.MultipleOf)
	}
	return nv
}

func (c *lowerContext) lowerString(n *Node) *validator.StringValidator {
	if !n.HasMinLength && !n.HasMaxLength && n.Pattern == nil {
		return nil
	}
	sv := validator.NewStringValidator()
	if n.HasMinLength || n.HasMaxLength {
		sv = sv.WithLength(n.HasMinLength, n.MinLength, n.HasMaxLength, n.MaxLength)
	}
	if n.Pattern != nil {
		sv = sv.WithRegex(n.Pattern)
	}
	return sv
}

func (c *lowerContext) lowerArray(n *Node) *validator.JsonArrayValidator {
	if !n.HasMinItems && !n.HasMaxItems && !n.UniqueItems &&
		n.Items == nil && len(n.TupleItems) == 0 && n.AdditionalItems == nil {
		return nil
	}
	av := validator.NewJsonArrayValidator(false, false)
	if n.HasMinItems || n.HasMaxItems {
		av = av.WithCount(n.HasMinItems, n.MinItems, n.HasMaxItems, n.MaxItems)
	}
	if len(n.TupleItems) > 0 {
		var additional validator.Validator
		if n.AdditionalItems != nil {
			additional = c.lower(n.AdditionalItems)
		}
		av = av.WithTupleItems(c.lowerAll(n.TupleItems), additional)
	} else if n.Items != nil {
		av = av.WithItemValidator(c.lower(n.Items))
	}
	if n.UniqueItems {
		av = av.WithUniqueItems(true)
	}
	return av
}

func (c *lowerContext) lowerObject(n *Node) *validator.JsonObjectSchemaValidator {
	if len(n.Required) == 0 && len(n.Properties) == 0 && len(n.PatternProperties) == 0 &&
		n.AdditionalProperties == nil && len(n.Dependencies) == 0 &&
		!n.HasMinProperties && !n.HasMaxProperties {
		return nil
	}

	ov := validator.NewJsonObjectSchemaValidator(false, false)

	if len(n.Required) > 0 {
		ov = ov.WithRequired(n.Required)
	}

	if len(n.Properties) > 0 {
		props := make(map[string]validator.Validator, len(n.Properties))
		for _, p := range n.Properties {
			props[p.Key] = c.lower(p.Schema)
		}
		ov = ov.WithProperties(props)
	}

	if len(n.PatternProperties) > 0 {
		pps := make([]validator.PatternPropertyValidator, len(n.PatternProperties))
		for i, p := range n.PatternProperties {
			pps[i] = validator.PatternPropertyValidator{Pattern: p.PatternRegex, Validator: c.lower(p.Schema)}
		}
		ov = ov.WithPatternProperties(pps)
	}

	if n.AdditionalProperties != nil {
		ov = ov.WithAdditionalProperties(c.lower(n.AdditionalProperties))
	}

	if len(n.Dependencies) > 0 {
		deps := make([]validator.Dependency, len(n.Dependencies))
		for i, d := range n.Dependencies {
			dep := validator.Dependency{Key: d.Key, RequiredKeys: d.DependencyRequiredKeys}
			if d.DependencySchema != nil {
				dep.SchemaDependency = c.lower(d.DependencySchema)
			}
			deps[i] = dep
		}
		ov = ov.WithDependencies(deps)
	}

	// minProperties/maxProperties have no draft-04-specific validator of
	// their own; they're the same count bound a KeyedCollectionValidator
	// already expresses, so route them through JsonObjectValidator's
	// embedded content validator rather than inventing a new field.
	if n.HasMinProperties || n.HasMaxProperties {
		content := validator.NewKeyedCollectionValidator(nil, nil, nil).
			WithCount(n.HasMinProperties, n.MinProperties, n.HasMaxProperties, n.MaxProperties)
		ov.Base = ov.Base.WithContent(content)
	}

	return ov
}

// valueMatchesTypes reports whether val's runtime kind is one of the
// declared "type" values, treating a whole-number float as satisfying
// "integer" the way most draft-04 implementations do.
func valueMatchesTypes(val value.Value, types map[TypeKeyword]struct{}) bool {
	if _, ok := types[TypeAny]; ok {
		return true
	}
	for t := range types {
		switch t {
		case TypeNull:
			if val.IsNull() {
				return true
			}
		case TypeBoolean:
			if val.Kind() == value.KindBoolean {
				return true
			}
		case TypeString:
			if val.Kind() == value.KindString {
				return true
			}
		case TypeArray:
			if val.Kind() == value.KindArray {
				return true
			}
		case TypeObject:
			if val.Kind() == value.KindObject {
				return true
			}
		case TypeNumber:
			if _, ok := val.Number(); ok {
				return true
			}
		case TypeInteger:
			if isIntegral(val) {
				return true
			}
		}
	}
	return false
}

func isIntegral(val value.Value) bool {
	if _, ok := val.Int(); ok {
		return true
	}
	f, ok := val.Float()
	return ok && f == float64(int64(f))
}
