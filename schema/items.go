package schema

import "github.com/prachigauriar/twvalidation/value"

// parseItemsKeywords parses draft-04's array keywords: "items" (either a
// single schema applied to every element, or an array of positional
// schemas — the tuple form), "additionalItems" (a schema or boolean
// governing positions beyond the tuple), minItems/maxItems, and
// uniqueItems (spec.md §6.1).
func parseItemsKeywords(obj *value.Object, n *Node, ctx *parseContext) error {
	if v, ok := obj.Get("items"); ok {
		defer ctx.enter("items")()
		if items, ok := v.Items(); ok {
			tuple := make([]*Node, 0, len(items))
			for i, item := range items {
				child, err := func() (*Node, error) {
					defer ctx.enter(indexString(i))()
					return parseSchemaNode(item, ctx)
				}()
				if err != nil {
					return err
				}
				tuple = append(tuple, child)
			}
			n.TupleItems = tuple
		} else {
			child, err := parseSchemaNode(v, ctx)
			if err != nil {
				return err
			}
			n.Items = child
		}
	}

	if v, ok := obj.Get("additionalItems"); ok {
		defer ctx.enter("additionalItems")()
		child, err := parseSchemaNode(v, ctx)
		if err != nil {
			return err
		}
		n.AdditionalItems = child
	}

	if minItems, present, err := parseUnsignedKeyword(obj, "minItems", ctx); err != nil {
		return err
	} else if present {
		n.HasMinItems, n.MinItems = true, minItems
	}
	if maxItems, present, err := parseUnsignedKeyword(obj, "maxItems", ctx); err != nil {
		return err
	} else if present {
		n.HasMaxItems, n.MaxItems = true, maxItems
	}

	if v, ok := obj.Get("uniqueItems"); ok {
		b, ok := v.Bool()
		if !ok {
			return newParseErrorAt(ErrInvalidClass, ctx.currentPath()+"/uniqueItems", "uniqueItems must be a boolean", nil)
		}
		n.UniqueItems = b
	}

	return nil
}
