package schema

import "github.com/prachigauriar/twvalidation/value"

// parseEnum parses draft-04's "enum" keyword into a closed set of
// permitted values (spec.md §6.1). draft-04 requires enum to be a
// non-empty array; an empty array can never be satisfied, so it is
// treated the same as allOf/anyOf/oneOf's emptiness error.
func parseEnum(obj *value.Object, n *Node, ctx *parseContext) error {
	v, ok := obj.Get("enum")
	if !ok {
		return nil
	}
	defer ctx.enter("enum")()

	items, ok := v.Items()
	if !ok {
		return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "enum must be an array", nil)
	}
	if len(items) == 0 {
		return newParseErrorAt(ErrRequiresAtLeastOneItem, ctx.currentPath(), "enum must not be empty", nil)
	}

	n.EnumValues = append([]value.Value(nil), items...)
	return nil
}
