package schema

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/prachigauriar/twvalidation/validator"
	"github.com/prachigauriar/twvalidation/value"
)

// Compiler ties parsing, two-phase reference resolution, and lowering
// into a single entry point. Compile itself caches nothing: each call
// parses and lowers afresh. CompileCached keeps lowered Validators under
// a caller-chosen key, and the remote loader keeps the parsed ASTs of
// external documents fetched for $ref.
type Compiler struct {
	loader            *remoteLoader
	maxRecursionDepth int

	mu         sync.Mutex
	validCache map[string]validator.Validator

	group singleflight.Group
}

// CompilerOption configures a Compiler at construction time.
type CompilerOption func(*Compiler)

// WithResourceLoader configures how the Compiler fetches documents named
// by an external $ref. Without one, external references are a fatal
// ErrReferenceResolution at resolve time.
func WithResourceLoader(loader ResourceLoader) CompilerOption {
	return func(c *Compiler) { c.loader = newRemoteLoader(loader) }
}

// WithMaxRecursionDepth records depth on the Compiler. Lowering and
// evaluation do not read it: every ThunkValidator stops $ref recursion
// at the validator package's fixed depth of 64, whatever this option
// is set to.
func WithMaxRecursionDepth(depth int) CompilerOption {
	return func(c *Compiler) { c.maxRecursionDepth = depth }
}

// NewCompiler constructs a Compiler with the given options applied.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		validCache: make(map[string]validator.Validator),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses, resolves, and lowers a JSON Schema document's raw
// bytes into a Validator, returning any recoverable warnings alongside
// it (spec.md §4.F–§4.H).
func (c *Compiler) Compile(doc []byte) (validator.Validator, []Warning, error) {
	val, err := value.Decode(doc)
	if err != nil {
		return nil, nil, newParseError(ErrJSONSerializationError, "invalid JSON", err)
	}
	return c.CompileValue(val)
}

// CompileValue is Compile for an already-decoded document value.
func (c *Compiler) CompileValue(val value.Value) (validator.Validator, []Warning, error) {
	root, warnings, err := ParseTopLevel(val, c.loader)
	if err != nil {
		return nil, nil, err
	}
	return Lower(root), warnings, nil
}

// CompileNode lowers an already-parsed, already-resolved AST node
// directly, skipping parse and reference resolution. Useful for
// compiling a definition pulled out of a larger document that's already
// been through ParseTopLevel.
func (c *Compiler) CompileNode(n *Node) validator.Validator {
	return Lower(n)
}

// CompileCached behaves like Compile but remembers the result under key,
// so compiling the same schema document repeatedly (e.g. once per
// incoming request referencing the same schema URI) only parses and
// lowers it once. Concurrent first-compiles of the same key are
// coalesced. A call answered from the cache returns no warnings.
func (c *Compiler) CompileCached(key string, doc []byte) (validator.Validator, []Warning, error) {
	c.mu.Lock()
	if v, ok := c.validCache[key]; ok {
		c.mu.Unlock()
		return v, nil, nil
	}
	c.mu.Unlock()

	type compiled struct {
		v        validator.Validator
		warnings []Warning
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		v, warnings, err := c.Compile(doc)
		if err != nil {
			return nil, err
		}
		return compiled{v: v, warnings: warnings}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	out := result.(compiled)
	c.mu.Lock()
	c.validCache[key] = out.v
	c.mu.Unlock()
	return out.v, out.warnings, nil
}
