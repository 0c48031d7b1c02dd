package schema

import (
	"fmt"
	"strings"

	"github.com/prachigauriar/twvalidation/value"
)

// parseContext threads warning accumulation, the current path (for
// warning/error messages), and the remote loader through the recursive
// descent parser (spec.md §4.F, §4.G).
type parseContext struct {
	warnings *[]Warning
	path     []string
	loader   *remoteLoader
}

func newParseContext(loader *remoteLoader) *parseContext {
	return &parseContext{warnings: new([]Warning), loader: loader}
}

func (c *parseContext) currentPath() string {
	if len(c.path) == 0 {
		return "#"
	}
	return "#/" + strings.Join(c.path, "/")
}

// enter pushes component onto the path and returns a func that pops it;
// callers use `defer ctx.enter("foo")()`.
func (c *parseContext) enter(component string) func() {
	c.path = append(c.path, component)
	n := len(c.path)
	return func() { c.path = c.path[:n-1] }
}

func (c *parseContext) warn(kind WarningKind, msg string) {
	*c.warnings = append(*c.warnings, Warning{Kind: kind, Path: c.currentPath(), Msg: msg})
}

// ParseTopLevel parses a decoded JSON document into a frozen AST, per
// spec.md §4.F: the result is either an AST and warnings, or a fatal
// ParseError. Once parsed, every Reference in the tree is resolved
// against the whole document (spec.md §3.4's two-phase lifecycle).
func ParseTopLevel(doc value.Value, loader *remoteLoader) (*Node, []Warning, error) {
	ctx := newParseContext(loader)

	root, err := parseSchemaNode(doc, ctx)
	if err != nil {
		return nil, nil, err
	}

	top := &Node{Kind: NodeTopLevel, Definitions: root.Definitions}
	top.Schema = root
	top.References = root.ChildrenReferenceNodes()

	if err := resolveReferences(root, top, ctx); err != nil {
		return nil, nil, err
	}

	return root, *ctx.warnings, nil
}

// parseSchemaNode parses a single schema position: a JSON boolean (a
// BooleanValue node) or a JSON object (every other node kind).
func parseSchemaNode(val value.Value, ctx *parseContext) (*Node, error) {
	if b, ok := val.Bool(); ok {
		return &Node{Kind: NodeBooleanValue, BooleanValue: b}, nil
	}

	obj, ok := val.Object()
	if !ok {
		return nil, newParseErrorAt(ErrInvalidClass, ctx.currentPath(), fmt.Sprintf("schema must be a boolean or object, got %s", val.Kind()), nil)
	}

	n := &Node{Kind: NodeGeneric}

	// "definitions" is parsed before anything else, including a sibling
	// "$ref": a document commonly places its definitions alongside a
	// root-level $ref purely so other $refs have somewhere to point, and
	// reference resolution walks from the document's root node, so that
	// root must carry Definitions even when it is itself a Reference.
	if err := parseDefinitions(obj, n, ctx); err != nil {
		return nil, err
	}

	if refVal, ok := obj.Get("$ref"); ok {
		refStr, ok := refVal.Str()
		if !ok {
			return nil, newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "$ref must be a string", nil)
		}
		path, err := parseReferencePath(refStr)
		if err != nil {
			return nil, err
		}
		n.Kind, n.ReferencePath = NodeReference, path
		return n, nil
	}

	if err := parseMetadata(obj, n); err != nil {
		return nil, err
	}
	if err := parseSchemaVersion(obj, ctx); err != nil {
		return nil, err
	}

	types, explicit, err := parseTypeKeyword(obj, ctx)
	if err != nil {
		return nil, err
	}
	n.ValidTypes, n.TypeIsExplicit = types, explicit

	if err := parseEnum(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseAllOf(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseAnyOf(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseOneOf(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseNot(obj, n, ctx); err != nil {
		return nil, err
	}

	n.Kind = classifyKind(types, explicit)
	if n.Kind == NodeNumber {
		n.RequiresInteger = requiresIntegerFor(n)
	}

	// Every draft-04 validation keyword applies only to instances of the
	// kind it addresses, regardless of whether "type" was declared at
	// all (spec.md §6.1) — so every keyword family is parsed whenever
	// its keys are present, not gated on the classified Kind. Kind
	// still records whether a single family exhausts the declared
	// "type" set, which the lowering visitor uses for the Ambiguous fork.
	if err := parseNumericKeywords(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseStringKeywords(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseItemsKeywords(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parsePropertiesKeywords(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parsePatternPropertiesKeywords(obj, n, ctx); err != nil {
		return nil, err
	}
	if err := parseDependenciesKeywords(obj, n, ctx); err != nil {
		return nil, err
	}

	return n, nil
}

func hasType(types map[TypeKeyword]struct{}, t TypeKeyword) bool {
	_, ok := types[t]
	return ok
}

var numberFamily = map[TypeKeyword]struct{}{TypeInteger: {}, TypeNumber: {}}

// classifyKind implements spec.md §4.F's "type handling": a single type
// (or list confined to one family) produces the matching typed node; a
// list spanning multiple families produces Ambiguous; no explicit type
// produces Generic.
func classifyKind(types map[TypeKeyword]struct{}, explicit bool) NodeKind {
	if !explicit || len(types) == 0 {
		return NodeGeneric
	}
	if isSubsetOf(types, numberFamily) {
		return NodeNumber
	}
	if len(types) == 1 {
		switch soleType(types) {
		case TypeString:
			return NodeString
		case TypeArray:
			return NodeArray
		case TypeObject:
			return NodeObject
		default:
			return NodeGeneric
		}
	}
	return NodeAmbiguous
}

func isSubsetOf(a, b map[TypeKeyword]struct{}) bool {
	for t := range a {
		if _, ok := b[t]; !ok {
			return false
		}
	}
	return true
}

func soleType(types map[TypeKeyword]struct{}) TypeKeyword {
	for t := range types {
		return t
	}
	return TypeAny
}

func parseMetadata(obj *value.Object, n *Node) error {
	if v, ok := obj.Get("title"); ok {
		if s, ok := v.Str(); ok {
			n.Title = s
		}
	}
	if v, ok := obj.Get("description"); ok {
		if s, ok := v.Str(); ok {
			n.Description = s
		}
	}
	return nil
}

func parseSchemaVersion(obj *value.Object, ctx *parseContext) error {
	const draft04 = "http://json-schema.org/draft-04/schema#"
	v, ok := obj.Get("$schema")
	if !ok {
		ctx.warn(WarningSchemaVersionAssumed, "$schema absent, assuming draft-04")
		return nil
	}
	s, ok := v.Str()
	if !ok || s != draft04 {
		ctx.warn(WarningSchemaVersionAssumed, fmt.Sprintf("$schema %q is not draft-04, proceeding as draft-04 anyway", s))
	}
	return nil
}

func parseDefinitions(obj *value.Object, n *Node, ctx *parseContext) error {
	key := "definitions"
	v, ok := obj.Get(key)
	if !ok {
		key = "$defs"
		v, ok = obj.Get(key)
	}
	if !ok {
		return nil
	}
	defer ctx.enter(key)()

	defsObj, ok := v.Object()
	if !ok {
		return newParseErrorAt(ErrInvalidClass, ctx.currentPath(), "definitions must be an object", nil)
	}

	n.Definitions = make(map[string]*Node, defsObj.Len())
	for _, k := range defsObj.Keys() {
		childVal, _ := defsObj.Get(k)
		child, err := func() (*Node, error) {
			defer ctx.enter(k)()
			return parseSchemaNode(childVal, ctx)
		}()
		if err != nil {
			return err
		}
		n.Definitions[k] = child
	}
	return nil
}
