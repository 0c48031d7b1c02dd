package schema

import "github.com/prachigauriar/twvalidation/value"

// parseAllOf parses draft-04's "allOf" keyword: a non-empty array of
// subschemas, every one of which the instance must satisfy (spec.md §6.1).
func parseAllOf(obj *value.Object, n *Node, ctx *parseContext) error {
	children, err := parseSchemaList(obj, "allOf", ctx)
	if err != nil {
		return err
	}
	n.AllOf = children
	return nil
}

// parseSchemaList parses keyword's value as a non-empty array of nested
// schemas, shared by allOf/anyOf/oneOf (spec.md §6.1 — all three share
// the same "non-empty array of subschemas" shape).
func parseSchemaList(obj *value.Object, keyword string, ctx *parseContext) ([]*Node, error) {
	v, ok := obj.Get(keyword)
	if !ok {
		return nil, nil
	}
	defer ctx.enter(keyword)()

	items, ok := v.Items()
	if !ok {
		return nil, newParseErrorAt(ErrInvalidClass, ctx.currentPath(), keyword+" must be an array", nil)
	}
	if len(items) == 0 {
		return nil, newParseErrorAt(ErrRequiresAtLeastOneItem, ctx.currentPath(), keyword+" must not be empty", nil)
	}

	children := make([]*Node, 0, len(items))
	for i, item := range items {
		child, err := func() (*Node, error) {
			defer ctx.enter(indexString(i))()
			return parseSchemaNode(item, ctx)
		}()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func indexString(i int) string {
	if i == 0 {
		return "0"
	}
	digits := make([]byte, 0, 4)
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}
