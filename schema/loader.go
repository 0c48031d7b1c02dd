package schema

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/prachigauriar/twvalidation/value"
)

// ResourceLoader fetches the raw bytes of an externally-referenced schema
// document, keyed by the $ref's pre-fragment portion (spec.md §6.2: a
// $ref may name another file or URI before the "#").
type ResourceLoader interface {
	Load(key string) ([]byte, error)
}

// remoteLoader wraps a ResourceLoader with a parsed-document cache, so a
// document named by many $refs across a tree is fetched and parsed once.
// Concurrent first-fetches of the same key are coalesced with
// singleflight rather than each paying the fetch-and-parse cost (spec.md
// §9's compiler-level caching requirement).
type remoteLoader struct {
	loader ResourceLoader

	mu    sync.Mutex
	cache map[string]*Node

	group singleflight.Group
}

func newRemoteLoader(loader ResourceLoader) *remoteLoader {
	if loader == nil {
		return nil
	}
	return &remoteLoader{loader: loader, cache: make(map[string]*Node)}
}

// documentFor returns the parsed root Node of the external document
// named by key, fetching and parsing it at most once.
func (l *remoteLoader) documentFor(key string) (*Node, error) {
	l.mu.Lock()
	if n, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return n, nil
	}
	l.mu.Unlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		raw, err := l.loader.Load(key)
		if err != nil {
			return nil, newParseError(ErrLoadFailure, "failed to load "+key, err)
		}
		val, err := value.Decode(raw)
		if err != nil {
			return nil, newParseError(ErrJSONSerializationError, "invalid JSON in "+key, err)
		}
		root, _, err := ParseTopLevel(val, l)
		if err != nil {
			return nil, newParseError(ErrInvalidSchema, "could not parse "+key, err)
		}
		return root, nil
	})
	if err != nil {
		return nil, err
	}

	root := result.(*Node)
	l.mu.Lock()
	l.cache[key] = root
	l.mu.Unlock()
	return root, nil
}

// resolveReferences performs the second phase of spec.md §3.4's
// two-phase reference lifecycle: every Reference node collected while
// parsing root is bound to the Node its path names, fetching external
// documents through ctx.loader as needed. A reference to a location that
// doesn't exist is a fatal ErrReferenceResolution, not a warning — an
// unresolvable $ref makes the whole schema unusable.
func resolveReferences(root *Node, top *Node, ctx *parseContext) error {
	for _, ref := range top.References {
		target, err := resolveOne(root, ref.ReferencePath, ctx)
		if err != nil {
			return err
		}
		ref.ResolvedReference = target
	}
	return nil
}

func resolveOne(root *Node, path *ReferencePath, ctx *parseContext) (*Node, error) {
	base := root
	if path.IsExternal() {
		if ctx.loader == nil {
			return nil, newParseError(ErrReferenceResolution, "external reference "+path.ExternalKey+" but no resource loader is configured", nil)
		}
		external, err := ctx.loader.documentFor(path.ExternalKey)
		if err != nil {
			return nil, err
		}
		base = external
	}

	if len(path.Components) == 0 {
		return base, nil
	}

	target, ok := base.NodeForPath(path.Components)
	if !ok {
		return nil, newParseError(ErrReferenceResolution, "no node at "+path.ExternalKey+"#/"+strings.Join(path.Components, "/"), nil)
	}
	return target, nil
}
