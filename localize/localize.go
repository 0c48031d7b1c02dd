// Package localize turns a verror.Error tree into human-readable text in
// a caller-chosen language, mirroring kaptinlin-jsonschema's i18n.go/
// result.go Localize pattern: an embedded locale bundle keyed by the
// finite error codes verror.Kind already assigns, looked up through
// github.com/kaptinlin/go-i18n rather than a hand-rolled message table.
package localize

import (
	"embed"
	"fmt"

	"github.com/kaptinlin/go-i18n"

	"github.com/prachigauriar/twvalidation/value"
	"github.com/prachigauriar/twvalidation/verror"
)

//go:embed locales/*.json
var localesFS embed.FS

// Bundle wraps an initialized i18n bundle loaded from the embedded
// locale files. Construct one with New and keep it around for the
// process lifetime; NewLocalizer is cheap to call per request.
type Bundle struct {
	i18n *i18n.I18n
}

// New loads the embedded locale bundle, defaulting to English with
// Simplified Chinese also available, matching the two locales
// kaptinlin-jsonschema ships out of the box.
func New() (*Bundle, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return &Bundle{i18n: bundle}, nil
}

// Localizer renders a verror.Error tree in one locale. It is the
// out-of-scope localization trait the error tree's Code/Message split
// exists to support.
type Localizer interface {
	// Localize renders a single error's own message, ignoring its
	// children. Callers walking a tree call it once per node.
	Localize(err *verror.Error) string
}

// RequestLocalizer is a Bundle scoped to one locale, analogous to
// kaptinlin-jsonschema's *i18n.Localizer threaded through a single
// request's error formatting.
type RequestLocalizer struct {
	locale *i18n.Localizer
}

// NewLocalizer returns a Localizer for locale, falling back to the
// bundle's default locale for any code the requested locale doesn't
// translate.
func (b *Bundle) NewLocalizer(locale string) *RequestLocalizer {
	return &RequestLocalizer{locale: b.i18n.NewLocalizer(locale)}
}

// Localize looks up err's code and fills in its template variables from
// the error's own fields — the validated value (if attached) and, for
// the aggregate kinds, the count of contributing sub-errors. Falls back
// to the opaque Message when the locale has no translation.
func (l *RequestLocalizer) Localize(err *verror.Error) string {
	if err == nil {
		return ""
	}
	vars := varsFor(err)
	msg := l.locale.Get(err.Code(), i18n.Vars(vars))
	if msg == "" || msg == err.Code() {
		return err.Error()
	}
	return msg
}

func varsFor(err *verror.Error) map[string]any {
	vars := map[string]any{"message": err.Message()}
	if v, ok := err.ValidatedValue(); ok {
		vars["value"] = describeValue(v)
	}
	if u := err.Underlying(); len(u) > 0 {
		vars["count"] = len(u)
	}
	return vars
}

func describeValue(v value.Value) string {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.Str()
		return s
	case value.KindAbsent:
		return "<absent>"
	case value.KindNull:
		return "null"
	case value.KindBoolean:
		b, _ := v.Bool()
		return fmt.Sprintf("%t", b)
	case value.KindInteger:
		i, _ := v.Int()
		return fmt.Sprintf("%d", i)
	case value.KindFloat:
		f, _ := v.Float()
		return fmt.Sprintf("%g", f)
	case value.KindArray:
		items, _ := v.Items()
		return fmt.Sprintf("<array of %d>", len(items))
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// Detail is one localized node in a flattened error tree, path-qualified
// the way kaptinlin-jsonschema's EvaluationResult.ToLocalizeList
// qualifies each EvaluationError by its instance location.
type Detail struct {
	Path    string
	Code    string
	Message string
}

// Details walks err's tree depth-first, localizing every node and
// recording the object-key/array-index path that reaches it. The root
// error itself is included with path "".
func Details(l Localizer, err *verror.Error) []Detail {
	var out []Detail
	collectDetails(l, err, "", &out)
	return out
}

func collectDetails(l Localizer, err *verror.Error, path string, out *[]Detail) {
	if err == nil {
		return
	}
	*out = append(*out, Detail{Path: path, Code: err.Code(), Message: l.Localize(err)})

	for _, u := range err.Underlying() {
		collectDetails(l, u, path, out)
	}
	if c := err.CountError(); c != nil {
		collectDetails(l, c, joinPath(path, "(count)"), out)
	}
	for i, e := range err.ElementErrors() {
		if e != nil {
			collectDetails(l, e, indexPath(path, i), out)
		}
	}
	for i, e := range err.KeyErrors() {
		if e != nil {
			collectDetails(l, e, joinPath(path, fmt.Sprintf("(key %d)", i)), out)
		}
	}
	for i, e := range err.ValueErrors() {
		if e != nil {
			collectDetails(l, e, indexPath(path, i), out)
		}
	}
	for _, key := range sortedPairKeys(err.PairErrors()) {
		collectDetails(l, err.PairErrors()[key], joinPath(path, key), out)
	}
	for _, key := range sortedByKeyKeys(err.ErrorsByKey()) {
		for _, e := range err.ErrorsByKey()[key] {
			collectDetails(l, e, joinPath(path, key), out)
		}
	}
}

func joinPath(base, component string) string {
	if base == "" {
		return component
	}
	return base + "." + component
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

func sortedPairKeys(m map[string]*verror.Error) []string {
	return sortedStringKeys(keysOf(m))
}

func sortedByKeyKeys(m map[string][]*verror.Error) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return sortedStringKeys(keys)
}

func keysOf(m map[string]*verror.Error) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func sortedStringKeys(keys []string) []string {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
