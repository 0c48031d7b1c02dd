package schema

import "github.com/prachigauriar/twvalidation/value"

// parseOneOf parses draft-04's "oneOf" keyword: a non-empty array of
// subschemas, exactly one of which the instance must satisfy.
func parseOneOf(obj *value.Object, n *Node, ctx *parseContext) error {
	children, err := parseSchemaList(obj, "oneOf", ctx)
	if err != nil {
		return err
	}
	n.OneOf = children
	return nil
}
