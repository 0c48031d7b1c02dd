// Package value defines the tagged-variant representation of the data the
// validation engine operates over: the JSON-shaped universe of null,
// boolean, integer, float, string, array, and object values.
package value

import "fmt"

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent marks a Value that was never supplied at all, as
	// opposed to KindNull which marks an explicit JSON null. Only a few
	// call sites (Value/KeyValueCoding validators) ever see KindAbsent;
	// it is not a JSON value in its own right.
	KindAbsent Kind = iota
	KindNull
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

// String renders the Kind the way error messages and %v formatting want it.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an immutable tagged union over the data kinds the engine
// validates. The zero Value is Absent.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	str     string
	array   []Value
	object  *Object
}

// Absent returns the distinguished value representing "no value was
// supplied here" — used by validators whose allow_absent semantics
// distinguish missing data from explicit null.
func Absent() Value { return Value{kind: KindAbsent} }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInteger, integer: i} }

// Float wraps a floating-point number.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps an ordered sequence of values. The slice is not copied;
// callers must not mutate it after handing it to Array.
func Array(items []Value) Value { return Value{kind: KindArray, array: items} }

// Obj wraps a keyed collection, preserving insertion order.
func Obj(o *Object) Value { return Value{kind: KindObject, object: o} }

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the distinguished "no value" marker.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload and whether v actually holds one.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == KindBoolean }

// Int returns the integer payload and whether v actually holds one.
func (v Value) Int() (int64, bool) { return v.integer, v.kind == KindInteger }

// Float returns the float payload and whether v actually holds one.
func (v Value) Float() (float64, bool) { return v.float, v.kind == KindFloat }

// Number returns v's numeric payload as a float64 regardless of whether
// it is an Integer or a Float, and reports whether v is numeric at all.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.integer), true
	case KindFloat:
		return v.float, true
	default:
		return 0, false
	}
}

// Str returns the string payload and whether v actually holds one.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Items returns the array payload and whether v actually holds one.
func (v Value) Items() ([]Value, bool) { return v.array, v.kind == KindArray }

// Object returns the object payload and whether v actually holds one.
func (v Value) Object() (*Object, bool) { return v.object, v.kind == KindObject }

// Equal reports deep structural equality, treating integers and floats
// of equal numeric value as equal (spec.md §8: "numeric 1 and 1.0 are
// considered equal for uniqueItems and enum").
func Equal(a, b Value) bool {
	an, aIsNum := a.Number()
	bn, bIsNum := b.Number()
	if aIsNum && bIsNum {
		return an == bn
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindAbsent, KindNull:
		return true
	case KindBoolean:
		return a.boolean == b.boolean
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.array) != len(b.array) {
			return false
		}
		for i := range a.array {
			if !Equal(a.array[i], b.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return objectsEqual(a.object, b.object)
	default:
		return false
	}
}

func objectsEqual(a, b *Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		av, ok := a.Get(k)
		if !ok {
			return false
		}
		bv, ok := b.Get(k)
		if !ok {
			return false
		}
		if !Equal(av, bv) {
			return false
		}
	}
	return true
}
