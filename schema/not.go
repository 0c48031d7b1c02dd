package schema

import "github.com/prachigauriar/twvalidation/value"

// parseNot parses draft-04's "not" keyword: a single subschema the
// instance must fail to satisfy.
func parseNot(obj *value.Object, n *Node, ctx *parseContext) error {
	v, ok := obj.Get("not")
	if !ok {
		return nil
	}
	defer ctx.enter("not")()

	child, err := parseSchemaNode(v, ctx)
	if err != nil {
		return err
	}
	n.Not = child
	return nil
}
