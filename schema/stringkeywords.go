package schema

import (
	"regexp"

	"github.com/prachigauriar/twvalidation/value"
)

// parseStringKeywords parses draft-04's minLength/maxLength/pattern
// keywords (spec.md §6.1). An uncompilable pattern is dropped rather
// than failing the whole parse (WarningPatternDropped).
func parseStringKeywords(obj *value.Object, n *Node, ctx *parseContext) error {
	if minLen, present, err := parseUnsignedKeyword(obj, "minLength", ctx); err != nil {
		return err
	} else if present {
		n.HasMinLength, n.MinLength = true, minLen
	}
	if maxLen, present, err := parseUnsignedKeyword(obj, "maxLength", ctx); err != nil {
		return err
	} else if present {
		n.HasMaxLength, n.MaxLength = true, maxLen
	}

	if v, ok := obj.Get("pattern"); ok {
		s, ok := v.Str()
		if !ok {
			return newParseErrorAt(ErrInvalidClass, ctx.currentPath()+"/pattern", "pattern must be a string", nil)
		}
		re, err := regexp.Compile(s)
		if err != nil {
			ctx.warn(WarningPatternDropped, "pattern failed to compile: "+err.Error())
		} else {
			n.Pattern = re
		}
	}
	return nil
}
