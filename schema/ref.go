package schema

import "strings"

// parseReferencePath parses a $ref string into a ReferencePath (spec.md
// §3.4, §6.2). `#/definitions/Foo/properties/bar` is purely internal;
// `other.json#/definitions/Foo` names an external resource before the
// `#`. JSON Pointer's `~1`/`~0` escapes are unescaped per component.
func parseReferencePath(ref string) (*ReferencePath, error) {
	if ref == "" {
		return nil, newParseError(ErrInvalidValue, "$ref must not be empty", nil)
	}

	hashIdx := strings.IndexByte(ref, '#')
	var externalKey, pointer string
	switch {
	case hashIdx < 0:
		// No fragment at all: the whole string names an external
		// resource with an implicit root pointer.
		externalKey, pointer = ref, ""
	default:
		externalKey, pointer = ref[:hashIdx], ref[hashIdx+1:]
	}

	var components []string
	if pointer != "" {
		if !strings.HasPrefix(pointer, "/") {
			return nil, newParseError(ErrInvalidValue, "$ref pointer must start with '/' after '#'", nil)
		}
		for _, raw := range strings.Split(pointer, "/")[1:] {
			components = append(components, unescapePointerComponent(raw))
		}
	}

	return &ReferencePath{ExternalKey: externalKey, Components: components}, nil
}

func unescapePointerComponent(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	s = strings.ReplaceAll(s, "~0", "~")
	return s
}
