package schema

import (
	"math"

	"github.com/prachigauriar/twvalidation/value"
)

// parseNumericKeywords parses draft-04's numeric validation keywords:
// minimum/maximum (with their boolean exclusiveMinimum/exclusiveMaximum
// modifiers, draft-04 style rather than the later drafts' numeric
// exclusive bounds) and multipleOf (spec.md §6.1).
func parseNumericKeywords(obj *value.Object, n *Node, ctx *parseContext) error {
	if v, ok := obj.Get("minimum"); ok {
		f, err := numericValue(v, "minimum", ctx)
		if err != nil {
			return err
		}
		n.HasMinimum, n.Minimum = true, f
	}
	if v, ok := obj.Get("maximum"); ok {
		f, err := numericValue(v, "maximum", ctx)
		if err != nil {
			return err
		}
		n.HasMaximum, n.Maximum = true, f
	}
	if v, ok := obj.Get("exclusiveMinimum"); ok {
		b, ok := v.Bool()
		if !ok {
			return newParseErrorAt(ErrInvalidClass, ctx.currentPath()+"/exclusiveMinimum", "exclusiveMinimum must be a boolean under draft-04", nil)
		}
		n.ExclusiveMinimum = b
	}
	if v, ok := obj.Get("exclusiveMaximum"); ok {
		b, ok := v.Bool()
		if !ok {
			return newParseErrorAt(ErrInvalidClass, ctx.currentPath()+"/exclusiveMaximum", "exclusiveMaximum must be a boolean under draft-04", nil)
		}
		n.ExclusiveMaximum = b
	}
	if v, ok := obj.Get("multipleOf"); ok {
		f, err := numericValue(v, "multipleOf", ctx)
		if err != nil {
			return err
		}
		if f < 0 {
			ctx.warn(WarningMultipleOfNegative, "multipleOf was negative, using its absolute value")
			f = math.Abs(f)
		}
		n.HasMultipleOf, n.MultipleOf = true, f
	}
	return nil
}

func numericValue(v value.Value, keyword string, ctx *parseContext) (float64, error) {
	f, ok := v.Number()
	if !ok {
		return 0, newParseErrorAt(ErrInvalidClass, ctx.currentPath()+"/"+keyword, keyword+" must be a number", nil)
	}
	return f, nil
}
