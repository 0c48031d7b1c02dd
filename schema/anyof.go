package schema

import "github.com/prachigauriar/twvalidation/value"

// parseAnyOf parses draft-04's "anyOf" keyword: a non-empty array of
// subschemas, at least one of which the instance must satisfy.
func parseAnyOf(obj *value.Object, n *Node, ctx *parseContext) error {
	children, err := parseSchemaList(obj, "anyOf", ctx)
	if err != nil {
		return err
	}
	n.AnyOf = children
	return nil
}
