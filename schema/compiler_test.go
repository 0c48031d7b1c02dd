package schema_test

import (
	"testing"

	"github.com/prachigauriar/twvalidation/schema"
	"github.com/prachigauriar/twvalidation/value"
)

func newTestCompiler(t *testing.T) *schema.Compiler {
	t.Helper()
	return schema.NewCompiler()
}

func compile(t *testing.T, doc string) (func(value.Value) bool, []schema.Warning) {
	t.Helper()
	c := schema.NewCompiler()
	v, warnings, err := c.Compile([]byte(doc))
	if err != nil {
		t.Fatalf("Compile(%s): unexpected error: %v", doc, err)
	}
	return func(val value.Value) bool { return v.Validate(val) == nil }, warnings
}

func TestCompileIntegerMinMax(t *testing.T) {
	pass, _ := compile(t, `{"type":"integer","minimum":1,"maximum":10}`)
	if !pass(value.Int(5)) {
		t.Error("5 should satisfy 1<=x<=10")
	}
	if pass(value.Int(0)) {
		t.Error("0 should violate minimum")
	}
	if pass(value.Int(11)) {
		t.Error("11 should violate maximum")
	}
	if pass(value.String("5")) {
		t.Error("a string should fail the integer type check")
	}
}

func TestCompileStringMinLengthPattern(t *testing.T) {
	pass, _ := compile(t, `{"type":"string","minLength":3,"pattern":"^[a-z]+$"}`)
	if !pass(value.String("abcdef")) {
		t.Error("abcdef should pass")
	}
	if pass(value.String("ab")) {
		t.Error("ab is too short")
	}
	if pass(value.String("ABCDEF")) {
		t.Error("ABCDEF should fail the pattern")
	}
}

func TestCompileArrayItemsUniqueItems(t *testing.T) {
	pass, _ := compile(t, `{"type":"array","items":{"type":"integer"},"uniqueItems":true}`)
	if !pass(value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)})) {
		t.Error("distinct integers should pass")
	}
	if pass(value.Array([]value.Value{value.Int(1), value.Int(1)})) {
		t.Error("duplicate elements should fail uniqueItems")
	}
	if pass(value.Array([]value.Value{value.Int(1), value.String("two")})) {
		t.Error("a non-integer element should fail the items schema")
	}
}

func TestCompileRefCycle(t *testing.T) {
	doc := `{
		"definitions": {
			"node": {
				"type": "object",
				"properties": {
					"value": {"type": "integer"},
					"next": {"$ref": "#/definitions/node"}
				}
			}
		},
		"$ref": "#/definitions/node"
	}`
	pass, _ := compile(t, doc)

	leaf := value.Obj(objectOf(t, map[string]value.Value{"value": value.Int(1)}))
	mid := value.Obj(objectOf(t, map[string]value.Value{"value": value.Int(2), "next": leaf}))
	if !pass(mid) {
		t.Error("a two-level linked structure should satisfy the self-referential schema")
	}

	if !pass(value.Obj(objectOf(t, map[string]value.Value{"value": value.Int(1)}))) {
		t.Error("a leaf with no next should still pass")
	}

	if pass(value.Obj(objectOf(t, map[string]value.Value{"value": value.String("nope")}))) {
		t.Error("a non-integer value field should fail")
	}
}

func objectOf(t *testing.T, pairs map[string]value.Value) *value.Object {
	t.Helper()
	obj := value.NewObject()
	for k, v := range pairs {
		obj.Set(k, v)
	}
	return obj
}

func TestCompileWarnsOnMissingSchemaVersion(t *testing.T) {
	_, warnings := compile(t, `{"type":"string"}`)
	found := false
	for _, w := range warnings {
		if w.Kind == schema.WarningSchemaVersionAssumed {
			found = true
		}
	}
	if !found {
		t.Error("expected a WarningSchemaVersionAssumed when $schema is absent")
	}
}

func TestCompileInvalidJSONIsFatal(t *testing.T) {
	c := schema.NewCompiler()
	if _, _, err := c.Compile([]byte(`{not json`)); err == nil {
		t.Error("expected a fatal ParseError for malformed JSON")
	}
}
