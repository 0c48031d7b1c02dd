package schema

import (
	"math"

	"github.com/prachigauriar/twvalidation/value"
)

// parseUnsignedKeyword parses a keyword that draft-04 specifies as a
// non-negative integer (minLength, maxLength, minItems, maxItems,
// minProperties, maxProperties). A negative value is clamped to 0
// (WarningUnsignedClamped); a non-integer value is rounded to the
// nearest integer, half away from zero (WarningUnsignedRounded) —
// spec.md §4.F's recoverable-warning list.
func parseUnsignedKeyword(obj *value.Object, keyword string, ctx *parseContext) (int, bool, error) {
	v, ok := obj.Get(keyword)
	if !ok {
		return 0, false, nil
	}
	path := ctx.currentPath() + "/" + keyword

	f, ok := v.Number()
	if !ok {
		return 0, false, newParseErrorAt(ErrInvalidClass, path, keyword+" must be a number", nil)
	}

	if rounded := math.Round(f); rounded != f {
		ctx.warn(WarningUnsignedRounded, keyword+" was not an integer, rounded to nearest")
		f = rounded
	}
	if f < 0 {
		ctx.warn(WarningUnsignedClamped, keyword+" was negative, clamped to 0")
		f = 0
	}
	return int(f), true, nil
}
