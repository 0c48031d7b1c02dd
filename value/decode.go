package value

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// Decode parses raw JSON bytes into a Value tree, preserving object key
// insertion order and distinguishing integral from fractional numbers
// (spec.md §3.1). It rejects trailing, non-whitespace garbage after the
// top-level value.
func Decode(raw []byte) (Value, error) {
	return DecodeReader(bytes.NewReader(raw))
}

// DecodeReader is Decode for a stream rather than an in-memory buffer.
func DecodeReader(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("value: trailing content after JSON document")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("value: unexpected delimiter %q", t)
		}
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return decodeNumber(t)
	default:
		return Value{}, fmt.Errorf("value: unsupported JSON token %T", tok)
	}
}

func decodeNumber(n json.Number) (Value, error) {
	s := n.String()
	if isIntegerLiteral(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("value: invalid number %q: %w", s, err)
	}
	return Float(f), nil
}

// isIntegerLiteral reports whether a JSON number's literal text has no
// fractional or exponent part, i.e. whether the *syntax* is integral.
// spec.md distinguishes Integer/Float values by this syntactic contract.
func isIntegerLiteral(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return false
		}
	}
	return true
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Value{}, err
	}
	return Array(items), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("value: object key must be a string, got %T", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Value{}, err
	}
	return Obj(obj), nil
}
