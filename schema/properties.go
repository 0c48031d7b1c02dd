package schema

import "github.com/prachigauriar/twvalidation/value"

// parsePropertiesKeywords parses draft-04's object keywords that govern
// named properties directly: minProperties/maxProperties, "required"
// (a non-empty-when-present array of unique property names), and
// "properties" itself (spec.md §6.1). patternProperties and
// dependencies are parsed separately (patternproperties.go,
// dependencies.go) since they interact with "properties" during lowering.
func parsePropertiesKeywords(obj *value.Object, n *Node, ctx *parseContext) error {
	if minProps, present, err := parseUnsignedKeyword(obj, "minProperties", ctx); err != nil {
		return err
	} else if present {
		n.HasMinProperties, n.MinProperties = true, minProps
	}
	if maxProps, present, err := parseUnsignedKeyword(obj, "maxProperties", ctx); err != nil {
		return err
	} else if present {
		n.HasMaxProperties, n.MaxProperties = true, maxProps
	}

	if v, ok := obj.Get("required"); ok {
		defer ctx.enter("required")()
		items, ok := v.Items()
		if !ok {
			return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "required must be an array", nil)
		}
		if len(items) == 0 {
			return newParseErrorAt(ErrRequiresAtLeastOneItem, ctx.currentPath(), "required must not be empty", nil)
		}
		keys := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.Str()
			if !ok {
				return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "required entries must be strings", nil)
			}
			keys = append(keys, s)
		}
		n.Required = dedupeStrings(keys, ctx)
	}

	if v, ok := obj.Get("properties"); ok {
		defer ctx.enter("properties")()
		propsObj, ok := v.Object()
		if !ok {
			return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "properties must be an object", nil)
		}
		props := make([]*Node, 0, propsObj.Len())
		for _, key := range propsObj.Keys() {
			propVal, _ := propsObj.Get(key)
			child, err := func() (*Node, error) {
				defer ctx.enter(key)()
				return parseSchemaNode(propVal, ctx)
			}()
			if err != nil {
				return err
			}
			props = append(props, &Node{Kind: NodeNamedProperty, Key: key, Schema: child})
		}
		n.Properties = props
	}

	if v, ok := obj.Get("additionalProperties"); ok {
		defer ctx.enter("additionalProperties")()
		child, err := parseSchemaNode(v, ctx)
		if err != nil {
			return err
		}
		n.AdditionalProperties = child
	}

	return nil
}

// dedupeStrings removes duplicate entries, keeping the first occurrence
// and warning if any were dropped (WarningDuplicatesDeduped).
func dedupeStrings(in []string, ctx *parseContext) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	dropped := false
	for _, s := range in {
		if _, ok := seen[s]; ok {
			dropped = true
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if dropped {
		ctx.warn(WarningDuplicatesDeduped, "duplicate entries removed, first occurrence kept")
	}
	return out
}
