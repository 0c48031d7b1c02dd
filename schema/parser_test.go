package schema_test

import (
	"testing"

	"github.com/prachigauriar/twvalidation/value"
)

func TestCompileOneOfMutualExclusion(t *testing.T) {
	doc := `{
		"oneOf": [
			{"type": "integer", "multipleOf": 2},
			{"type": "integer", "multipleOf": 3},
			{"type": "integer", "multipleOf": 5}
		]
	}`
	pass, _ := compile(t, doc)

	if !pass(value.Int(4)) {
		t.Error("4 is a multiple of 2 only, should pass oneOf")
	}
	if pass(value.Int(6)) {
		t.Error("6 is a multiple of both 2 and 3, should fail oneOf")
	}
	if pass(value.Int(7)) {
		t.Error("7 matches none of the three, should fail oneOf")
	}
}

func TestCompileDependencies(t *testing.T) {
	doc := `{
		"type": "object",
		"properties": {
			"creditCard": {"type": "string"},
			"billingAddress": {"type": "string"}
		},
		"dependencies": {
			"creditCard": ["billingAddress"]
		}
	}`
	pass, _ := compile(t, doc)

	withBoth := value.Obj(objectOf(t, map[string]value.Value{
		"creditCard":     value.String("4111-1111-1111-1111"),
		"billingAddress": value.String("1 Infinite Loop"),
	}))
	if !pass(withBoth) {
		t.Error("both dependency keys present should pass")
	}

	withoutAddress := value.Obj(objectOf(t, map[string]value.Value{
		"creditCard": value.String("4111-1111-1111-1111"),
	}))
	if pass(withoutAddress) {
		t.Error("creditCard without billingAddress should fail the property dependency")
	}
}

func TestParseRequiresAtLeastOneItem(t *testing.T) {
	c := newTestCompiler(t)
	for _, doc := range []string{
		`{"allOf": []}`,
		`{"anyOf": []}`,
		`{"oneOf": []}`,
		`{"required": []}`,
	} {
		if _, _, err := c.Compile([]byte(doc)); err == nil {
			t.Errorf("Compile(%s): expected a requires-at-least-one-item error", doc)
		}
	}
}

func TestParseUnknownTypeIsFatal(t *testing.T) {
	c := newTestCompiler(t)
	if _, _, err := c.Compile([]byte(`{"type": "nonsense"}`)); err == nil {
		t.Error("expected an invalid-value error for an unrecognized type name")
	}
}

func TestParseDefinitionsPropagatesChildError(t *testing.T) {
	c := newTestCompiler(t)
	doc := `{
		"definitions": {
			"broken": {"type": "nonsense"}
		},
		"$ref": "#/definitions/broken"
	}`
	if _, _, err := c.Compile([]byte(doc)); err == nil {
		t.Error("a fatal error inside one definition should abort the whole parse, not be dropped")
	}
}

func TestParsePatternDroppedWarning(t *testing.T) {
	_, warnings := compile(t, `{"type":"string","pattern":"(unterminated"}`)
	found := false
	for _, w := range warnings {
		if w.Kind.String() == "pattern-dropped" {
			found = true
		}
	}
	if !found {
		t.Error("expected a pattern-dropped warning for an uncompilable regex")
	}
}

func TestParseBooleanSchemas(t *testing.T) {
	passTrue, _ := compile(t, `true`)
	if !passTrue(value.Int(1)) || !passTrue(value.String("anything")) {
		t.Error("the `true` schema should accept every value")
	}

	passFalse, _ := compile(t, `false`)
	if passFalse(value.Int(1)) {
		t.Error("the `false` schema should reject every value")
	}
}
