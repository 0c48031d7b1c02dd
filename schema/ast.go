// Package schema implements a draft-04 JSON Schema front end: a parser
// that turns a decoded value.Value into an immutable AST (this file), and
// a lowering visitor that turns that AST into a validator.Validator
// (lower.go). The package is laid out the way kaptinlin-jsonschema lays
// out its single `jsonschema` package: one flat package, one file per
// keyword or concern, rather than a sub-package per pipeline stage.
package schema

import (
	"regexp"

	"github.com/prachigauriar/twvalidation/value"
)

// NodeKind identifies which AST variant a Node represents (spec.md §3.4).
type NodeKind int

const (
	NodeGeneric NodeKind = iota
	NodeNumber
	NodeString
	NodeArray
	NodeObject
	NodeAmbiguous
	NodeBooleanValue
	NodeReference
	NodeNamedProperty
	NodePatternProperty
	NodeDependency
	NodeTopLevel
)

// TypeKeyword is one of draft-04's eight JSON Schema "type" values
// (spec.md §6.1).
type TypeKeyword string

const (
	TypeAny     TypeKeyword = "any"
	TypeArray   TypeKeyword = "array"
	TypeBoolean TypeKeyword = "boolean"
	TypeInteger TypeKeyword = "integer"
	TypeNull    TypeKeyword = "null"
	TypeNumber  TypeKeyword = "number"
	TypeObject  TypeKeyword = "object"
	TypeString  TypeKeyword = "string"
)

// ReferencePath is a parsed $ref: an optional external-resource key (a
// file path or URI another document lives at) plus a non-empty list of
// internal JSON-Pointer path components (spec.md §3.4's Reference
// invariant, §6.2's reference syntax).
type ReferencePath struct {
	ExternalKey string
	Components  []string
}

// IsExternal reports whether the reference names another document
// rather than a location within the same document.
func (p ReferencePath) IsExternal() bool { return p.ExternalKey != "" }

// Node is the single, tagged-union AST type every schema concept lowers
// from: a tree is built bottom-up by the parser, frozen, and handed to
// the lowering visitor (spec.md §3.4's lifecycle). The parser fills in
// every keyword family a schema object carries, whatever its Kind; this
// mirrors the teacher's own
// `Schema` struct, which likewise carries every 2020-12 keyword as an
// optional field on one type rather than one type per keyword.
type Node struct {
	Kind NodeKind

	// Common fields, present on any schema-bearing variant.
	Title          string
	Description    string
	TypeIsExplicit bool
	ValidTypes     map[TypeKeyword]struct{}
	EnumValues     []value.Value
	AllOf          []*Node
	AnyOf          []*Node
	OneOf          []*Node
	Not            *Node
	Definitions    map[string]*Node

	// Number.
	HasMinimum       bool
	Minimum          float64
	ExclusiveMinimum bool
	HasMaximum       bool
	Maximum          float64
	ExclusiveMaximum bool
	HasMultipleOf    bool
	MultipleOf       float64
	RequiresInteger  bool

	// String.
	HasMinLength bool
	MinLength    int
	HasMaxLength bool
	MaxLength    int
	Pattern      *regexp.Regexp

	// Array.
	HasMinItems     bool
	MinItems        int
	HasMaxItems     bool
	MaxItems        int
	UniqueItems     bool
	Items           *Node   // homogeneous "items" schema form
	TupleItems      []*Node // positional "items" array form
	AdditionalItems *Node   // schema or BooleanValue; nil means "allowed"

	// Object.
	HasMinProperties     bool
	MinProperties        int
	HasMaxProperties     bool
	MaxProperties        int
	Required             []string
	Properties           []*Node // NodeNamedProperty children, insertion order
	PatternProperties    []*Node // NodePatternProperty children
	AdditionalProperties *Node   // schema or BooleanValue; nil means "allowed"
	Dependencies         []*Node // NodeDependency children

	// BooleanValue.
	BooleanValue bool

	// Reference.
	ReferencePath      *ReferencePath
	ResolvedReference  *Node // patched during two-phase resolution; nil if unresolved

	// NamedProperty / PatternProperty / Dependency wrapper fields.
	Key                     string // NamedProperty, Dependency; PatternProperty: the pattern source
	PatternRegex            *regexp.Regexp
	Schema                  *Node // NamedProperty, PatternProperty
	DependencyRequiredKeys  []string
	DependencySchema        *Node

	// TopLevel.
	References []*Node // every Reference node in the subtree, post-order
}

// ChildrenReferenceNodes returns every Reference node in n's subtree, in
// post-order (spec.md §4.E).
func (n *Node) ChildrenReferenceNodes() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.directChildren() {
		out = append(out, child.ChildrenReferenceNodes()...)
	}
	if n.Kind == NodeReference {
		out = append(out, n)
	}
	return out
}

// directChildren returns n's immediate schema-bearing children, across
// every field a variant might populate.
func (n *Node) directChildren() []*Node {
	var out []*Node
	out = append(out, n.AllOf...)
	out = append(out, n.AnyOf...)
	out = append(out, n.OneOf...)
	if n.Not != nil {
		out = append(out, n.Not)
	}
	for _, def := range n.Definitions {
		out = append(out, def)
	}
	if n.Items != nil {
		out = append(out, n.Items)
	}
	out = append(out, n.TupleItems...)
	if n.AdditionalItems != nil {
		out = append(out, n.AdditionalItems)
	}
	out = append(out, n.Properties...)
	out = append(out, n.PatternProperties...)
	if n.AdditionalProperties != nil {
		out = append(out, n.AdditionalProperties)
	}
	out = append(out, n.Dependencies...)
	if n.Schema != nil {
		out = append(out, n.Schema)
	}
	if n.DependencySchema != nil {
		out = append(out, n.DependencySchema)
	}
	return out
}

// NodeForPath resolves a JSON-Pointer-style path relative to n, consuming
// one component at a time. Unknown components or mismatched kinds return
// (nil, false) (spec.md §4.E).
func (n *Node) NodeForPath(components []string) (*Node, bool) {
	cur := n
	for i := 0; i < len(components); i++ {
		next, consumed, ok := cur.stepPath(components[i:])
		if !ok {
			return nil, false
		}
		cur = next
		i += consumed - 1
	}
	return cur, true
}

// stepPath consumes one or two leading components of remaining (a
// keyword name and, for keyed collections, the key/index that follows
// it) and returns the child it names, how many components it consumed,
// and whether the path was resolvable at all.
func (n *Node) stepPath(remaining []string) (*Node, int, bool) {
	if n == nil || len(remaining) == 0 {
		return nil, 0, false
	}
	head := remaining[0]

	switch head {
	case "items":
		if n.Items != nil {
			return n.Items, 1, true
		}
	case "additionalItems":
		if n.AdditionalItems != nil {
			return n.AdditionalItems, 1, true
		}
	case "additionalProperties":
		if n.AdditionalProperties != nil {
			return n.AdditionalProperties, 1, true
		}
	case "not":
		if n.Not != nil {
			return n.Not, 1, true
		}
	}

	if len(remaining) < 2 {
		return nil, 0, false
	}
	second := remaining[1]

	switch head {
	case "definitions", "$defs":
		if def, ok := n.Definitions[second]; ok {
			return def, 2, true
		}
	case "properties":
		for _, p := range n.Properties {
			if p.Key == second {
				return p.Schema, 2, true
			}
		}
	case "patternProperties":
		for _, p := range n.PatternProperties {
			if p.Key == second {
				return p.Schema, 2, true
			}
		}
	case "allOf":
		if idx, ok := parseIndex(second); ok && idx < len(n.AllOf) {
			return n.AllOf[idx], 2, true
		}
	case "anyOf":
		if idx, ok := parseIndex(second); ok && idx < len(n.AnyOf) {
			return n.AnyOf[idx], 2, true
		}
	case "oneOf":
		if idx, ok := parseIndex(second); ok && idx < len(n.OneOf) {
			return n.OneOf[idx], 2, true
		}
	case "items":
		if idx, ok := parseIndex(second); ok && idx < len(n.TupleItems) {
			return n.TupleItems[idx], 2, true
		}
	}
	return nil, 0, false
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
