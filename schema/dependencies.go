package schema

import "github.com/prachigauriar/twvalidation/value"

// parseDependenciesKeywords parses draft-04's "dependencies": an object
// mapping a property name to either a list of other properties it
// requires (property dependency) or a schema the whole instance must
// additionally satisfy whenever that property is present (schema
// dependency) (spec.md §6.1).
func parseDependenciesKeywords(obj *value.Object, n *Node, ctx *parseContext) error {
	v, ok := obj.Get("dependencies")
	if !ok {
		return nil
	}
	defer ctx.enter("dependencies")()

	depsObj, ok := v.Object()
	if !ok {
		return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "dependencies must be an object", nil)
	}

	deps := make([]*Node, 0, depsObj.Len())
	for _, key := range depsObj.Keys() {
		depVal, _ := depsObj.Get(key)
		dep, err := func() (*Node, error) {
			defer ctx.enter(key)()

			if items, ok := depVal.Items(); ok {
				keys := make([]string, 0, len(items))
				for _, item := range items {
					s, ok := item.Str()
					if !ok {
						return nil, newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "property dependency entries must be strings", nil)
					}
					keys = append(keys, s)
				}
				return &Node{Kind: NodeDependency, Key: key, DependencyRequiredKeys: dedupeStrings(keys, ctx)}, nil
			}

			schema, err := parseSchemaNode(depVal, ctx)
			if err != nil {
				return nil, err
			}
			return &Node{Kind: NodeDependency, Key: key, DependencySchema: schema}, nil
		}()
		if err != nil {
			return err
		}
		deps = append(deps, dep)
	}
	n.Dependencies = deps
	return nil
}
