package schema

import (
	"regexp"

	"github.com/prachigauriar/twvalidation/value"
)

// parsePatternPropertiesKeywords parses draft-04's "patternProperties":
// an object whose keys are regexes, each applied to every property whose
// name the regex matches (spec.md §6.1). A key that fails to compile as
// a regex is dropped, the same recoverable fate as the "pattern" keyword
// (WarningPatternDropped).
func parsePatternPropertiesKeywords(obj *value.Object, n *Node, ctx *parseContext) error {
	v, ok := obj.Get("patternProperties")
	if !ok {
		return nil
	}
	defer ctx.enter("patternProperties")()

	patObj, ok := v.Object()
	if !ok {
		return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "patternProperties must be an object", nil)
	}

	pats := make([]*Node, 0, patObj.Len())
	for _, key := range patObj.Keys() {
		re, err := regexp.Compile(key)
		if err != nil {
			ctx.warn(WarningPatternDropped, "patternProperties key failed to compile as a regex: "+err.Error())
			continue
		}
		patVal, _ := patObj.Get(key)
		child, err := func() (*Node, error) {
			defer ctx.enter(key)()
			return parseSchemaNode(patVal, ctx)
		}()
		if err != nil {
			return err
		}
		pats = append(pats, &Node{Kind: NodePatternProperty, Key: key, PatternRegex: re, Schema: child})
	}
	n.PatternProperties = pats
	return nil
}
