package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/prachigauriar/twvalidation/value"
)

// readFile reads path's contents, treating "-" as stdin, mirroring
// MacroPower-x/cmd/magicschema/main.go's run loop.
func readFile(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}
	return data, nil
}

// decodeDocument normalizes a schema or instance document into a Value.
// JSON is valid YAML, so every document goes through the same YAML
// decode, grounded on kaptinlin-jsonschema/compiler.go's setupMediaTypes
// (its "application/yaml" handler is yaml.Unmarshal into an `any`, same
// entry point as here). Unlike that handler, this one decodes with
// yaml.UseOrderedMap so every mapping comes back as a yaml.MapSlice
// instead of a map[string]any, and walks the result straight into a
// Value tree rather than round-tripping through encoding/json.Marshal —
// marshaling a map[string]any would alphabetize its keys and throw away
// the insertion order value.Decode otherwise preserves for JSON input.
func decodeDocument(data []byte) (value.Value, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrDecodeInput, err)
	}

	val, err := valueFromAny(doc)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrDecodeInput, err)
	}
	return val, nil
}

// valueFromAny converts a goccy/go-yaml decode result produced with
// yaml.UseOrderedMap into a Value tree. Every mapping arrives as a
// yaml.MapSlice, whose item order is the order Set below preserves.
func valueFromAny(v any) (value.Value, error) {
	switch t := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case int:
		return value.Int(int64(t)), nil
	case int64:
		return value.Int(t), nil
	case uint64:
		return value.Int(int64(t)), nil
	case float64:
		return value.Float(t), nil
	case yaml.MapSlice:
		obj := value.NewObject()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return value.Value{}, fmt.Errorf("object key must be a string, got %T", item.Key)
			}
			elem, err := valueFromAny(item.Value)
			if err != nil {
				return value.Value{}, err
			}
			obj.Set(key, elem)
		}
		return value.Obj(obj), nil
	case []any:
		items := make([]value.Value, 0, len(t))
		for _, elem := range t {
			elemVal, err := valueFromAny(elem)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, elemVal)
		}
		return value.Array(items), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported decoded type %T", v)
	}
}
