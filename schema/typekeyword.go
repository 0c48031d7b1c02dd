package schema

import (
	"fmt"

	"github.com/prachigauriar/twvalidation/value"
)

var knownTypeKeywords = map[string]TypeKeyword{
	"any":     TypeAny,
	"array":   TypeArray,
	"boolean": TypeBoolean,
	"integer": TypeInteger,
	"null":    TypeNull,
	"number":  TypeNumber,
	"object":  TypeObject,
	"string":  TypeString,
}

// parseTypeKeyword parses draft-04's "type" keyword, which may be a
// single type name or a non-empty array of type names (spec.md §6.1).
// Absence means no type restriction at all.
func parseTypeKeyword(obj *value.Object, ctx *parseContext) (map[TypeKeyword]struct{}, bool, error) {
	v, ok := obj.Get("type")
	if !ok {
		return nil, false, nil
	}
	defer ctx.enter("type")()

	if s, ok := v.Str(); ok {
		t, err := resolveTypeKeyword(s, ctx)
		if err != nil {
			return nil, false, err
		}
		return map[TypeKeyword]struct{}{t: {}}, true, nil
	}

	items, ok := v.Items()
	if !ok {
		return nil, false, newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "type must be a string or array of strings", nil)
	}
	if len(items) == 0 {
		return nil, false, newParseErrorAt(ErrRequiresAtLeastOneItem, ctx.currentPath(), "type array must not be empty", nil)
	}

	types := make(map[TypeKeyword]struct{}, len(items))
	for _, item := range items {
		s, ok := item.Str()
		if !ok {
			return nil, false, newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "type array entries must be strings", nil)
		}
		t, err := resolveTypeKeyword(s, ctx)
		if err != nil {
			return nil, false, err
		}
		types[t] = struct{}{}
	}
	return types, true, nil
}

func resolveTypeKeyword(s string, ctx *parseContext) (TypeKeyword, error) {
	t, ok := knownTypeKeywords[s]
	if !ok {
		return "", newParseErrorAt(ErrInvalidValue, ctx.currentPath(), fmt.Sprintf("unrecognized type %q", s), nil)
	}
	return t, nil
}
