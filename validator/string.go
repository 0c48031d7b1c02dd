package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

// foldCaser performs Unicode default case folding for the
// case-insensitive comparisons StringValidator's substring/prefix/
// suffix and wildcard checks need (spec.md §4.C.3); character-set
// membership is always case-sensitive. Grounded on the
// pack's golang.org/x/text dependency (kaptinlin-jsonschema/go.mod).
var foldCaser = cases.Fold()

func foldString(s string) string { return foldCaser.String(s) }

// StringMatchMode selects which substring-style comparison
// StringValidator.Match performs.
type StringMatchMode int

const (
	// MatchNone disables substring/prefix/suffix comparison.
	MatchNone StringMatchMode = iota
	MatchPrefix
	MatchSuffix
	MatchSubstring
)

// StringValidator validates string values (spec.md §4.C.3). Its checks
// run in the fixed order the spec mandates: type, length, regex,
// substring/prefix/suffix, wildcard, character set.
type StringValidator struct {
	HasMinLength bool
	MinLength    int
	HasMaxLength bool
	MaxLength    int
	// ComposedLength selects grapheme-cluster counting
	// (BoundedComposedLength) over code-unit counting (BoundedLength).
	ComposedLength bool

	// Regex, when non-nil, is matched against the value with no
	// implicit anchoring (spec.md §4.C.3: "anchoring follows the regex
	// itself").
	Regex *regexp.Regexp

	MatchMode     StringMatchMode
	MatchTarget   string
	MatchCaseFold bool

	// Wildcard, when non-empty, is a glob pattern where '?' matches
	// exactly one grapheme cluster and '*' matches zero or more,
	// evaluated greedily with backtracking (spec.md §4.C.3).
	Wildcard         string
	HasWildcard      bool
	WildcardCaseFold bool

	// CharacterSet, when non-nil, must contain every grapheme cluster
	// of the input (spec.md §4.C.3's "character-set membership for
	// every character in the input" — read as grapheme cluster for
	// consistency with the wildcard rule in the same component).
	CharacterSet    map[string]struct{}
	HasCharacterSet bool
}

// NewStringValidator constructs a StringValidator with only the type
// check active; chain With* methods to add constraints.
func NewStringValidator() *StringValidator { return &StringValidator{} }

// WithLength returns a copy of s bounded by code-unit length.
func (s StringValidator) WithLength(hasMin bool, min int, hasMax bool, max int) *StringValidator {
	s.HasMinLength, s.MinLength, s.HasMaxLength, s.MaxLength = hasMin, min, hasMax, max
	s.ComposedLength = false
	return &s
}

// WithComposedLength returns a copy of s bounded by grapheme-cluster length.
func (s StringValidator) WithComposedLength(hasMin bool, min int, hasMax bool, max int) *StringValidator {
	s.HasMinLength, s.MinLength, s.HasMaxLength, s.MaxLength = hasMin, min, hasMax, max
	s.ComposedLength = true
	return &s
}

// WithRegex returns a copy of s matched against re.
func (s StringValidator) WithRegex(re *regexp.Regexp) *StringValidator {
	s.Regex = re
	return &s
}

// WithMatch returns a copy of s performing a prefix/suffix/substring
// comparison against target.
func (s StringValidator) WithMatch(mode StringMatchMode, target string, caseFold bool) *StringValidator {
	s.MatchMode, s.MatchTarget, s.MatchCaseFold = mode, target, caseFold
	return &s
}

// WithWildcard returns a copy of s matched against a '?'/'*' glob pattern.
func (s StringValidator) WithWildcard(pattern string, caseFold bool) *StringValidator {
	s.Wildcard, s.HasWildcard, s.WildcardCaseFold = pattern, true, caseFold
	return &s
}

// WithCharacterSet returns a copy of s requiring every grapheme cluster
// of the input to be a member of allowed.
func (s StringValidator) WithCharacterSet(allowed []string) *StringValidator {
	set := make(map[string]struct{}, len(allowed))
	for _, g := range allowed {
		set[g] = struct{}{}
	}
	s.CharacterSet, s.HasCharacterSet = set, true
	return &s
}

// Validate runs the validator against val.
func (s *StringValidator) Validate(val value.Value) *verror.Error { return s.evaluate(val, 0) }

func (s *StringValidator) evaluate(val value.Value, _ int) *verror.Error {
	str, ok := val.Str()
	if !ok {
		return verror.New(verror.IncorrectType, s, fmt.Sprintf("expected a string, got %s", val.Kind())).WithValue(val)
	}

	if err := s.checkLength(str, val); err != nil {
		return err
	}
	if s.Regex != nil && !s.Regex.MatchString(str) {
		return verror.New(verror.FormatMismatch, s, fmt.Sprintf("%q does not match pattern %q", str, s.Regex.String())).WithValue(val)
	}
	if err := s.checkMatch(str, val); err != nil {
		return err
	}
	if s.HasWildcard && !wildcardMatch(s.Wildcard, str, s.WildcardCaseFold) {
		return verror.New(verror.FormatMismatch, s, fmt.Sprintf("%q does not match wildcard %q", str, s.Wildcard)).WithValue(val)
	}
	if s.HasCharacterSet {
		for _, g := range graphemeClusters(str) {
			if _, ok := s.CharacterSet[g]; !ok {
				return verror.New(verror.FormatMismatch, s, fmt.Sprintf("%q contains disallowed character %q", str, g)).WithValue(val)
			}
		}
	}
	return nil
}

func (s *StringValidator) checkLength(str string, val value.Value) *verror.Error {
	if !s.HasMinLength && !s.HasMaxLength {
		return nil
	}
	length := len(str)
	if s.ComposedLength {
		length = uniseg.GraphemeClusterCount(str)
	}
	if s.HasMinLength && length < s.MinLength {
		return verror.New(verror.LengthLessThanMin, s, fmt.Sprintf("length %d is less than minimum %d", length, s.MinLength)).WithValue(val)
	}
	if s.HasMaxLength && length > s.MaxLength {
		return verror.New(verror.LengthGreaterThanMax, s, fmt.Sprintf("length %d is greater than maximum %d", length, s.MaxLength)).WithValue(val)
	}
	return nil
}

func (s *StringValidator) checkMatch(str string, val value.Value) *verror.Error {
	if s.MatchMode == MatchNone {
		return nil
	}
	haystack, needle := str, s.MatchTarget
	if s.MatchCaseFold {
		haystack, needle = foldString(haystack), foldString(needle)
	}

	var matched bool
	switch s.MatchMode {
	case MatchPrefix:
		matched = strings.HasPrefix(haystack, needle)
	case MatchSuffix:
		matched = strings.HasSuffix(haystack, needle)
	case MatchSubstring:
		matched = strings.Contains(haystack, needle)
	}
	if !matched {
		return verror.New(verror.FormatMismatch, s, fmt.Sprintf("%q does not satisfy match against %q", str, s.MatchTarget)).WithValue(val)
	}
	return nil
}

// graphemeClusters splits s into its user-perceived characters.
func graphemeClusters(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// wildcardMatch implements greedy, backtracking '?'/'*' glob matching
// over grapheme clusters (spec.md §4.C.3).
func wildcardMatch(pattern, str string, caseFold bool) bool {
	if caseFold {
		pattern, str = foldString(pattern), foldString(str)
	}
	return globMatch(graphemeClusters(pattern), graphemeClusters(str))
}

func globMatch(pattern, str []string) bool {
	var pi, si int
	var starIdx = -1
	var matchIdx int

	for si < len(str) {
		switch {
		case pi < len(pattern) && (pattern[pi] == "?" || pattern[pi] == str[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == "*":
			starIdx = pi
			matchIdx = si
			pi++
		case starIdx != -1:
			pi = starIdx + 1
			matchIdx++
			si = matchIdx
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == "*" {
		pi++
	}
	return pi == len(pattern)
}

// Equal implements Validator.
func (s *StringValidator) Equal(other Validator) bool {
	o, ok := other.(*StringValidator)
	if !ok {
		return false
	}
	if s.HasMinLength != o.HasMinLength || s.MinLength != o.MinLength ||
		s.HasMaxLength != o.HasMaxLength || s.MaxLength != o.MaxLength ||
		s.ComposedLength != o.ComposedLength ||
		s.MatchMode != o.MatchMode || s.MatchTarget != o.MatchTarget || s.MatchCaseFold != o.MatchCaseFold ||
		s.HasWildcard != o.HasWildcard || s.Wildcard != o.Wildcard || s.WildcardCaseFold != o.WildcardCaseFold ||
		s.HasCharacterSet != o.HasCharacterSet {
		return false
	}
	if (s.Regex == nil) != (o.Regex == nil) {
		return false
	}
	if s.Regex != nil && s.Regex.String() != o.Regex.String() {
		return false
	}
	if s.HasCharacterSet {
		if len(s.CharacterSet) != len(o.CharacterSet) {
			return false
		}
		for k := range s.CharacterSet {
			if _, ok := o.CharacterSet[k]; !ok {
				return false
			}
		}
	}
	return true
}
