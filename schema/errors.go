package schema

import "github.com/pkg/errors"

// ParseErrorKind is the finite taxonomy of fatal schema-parse failures
// (spec.md §4.F, §4.G). Unlike verror.Error, a ParseError is a system
// fault — parsing a schema and validating a value never share an error
// type (spec.md §7).
type ParseErrorKind int

const (
	// ErrInvalidClass marks a construct that was not the expected JSON
	// kind, e.g. "properties" whose value isn't an object.
	ErrInvalidClass ParseErrorKind = iota
	// ErrInvalidValue marks a value violating a semantic constraint that
	// doesn't have a well-defined warning-level fallback.
	ErrInvalidValue
	// ErrRequiresAtLeastOneItem marks an empty allOf/anyOf/oneOf/required.
	ErrRequiresAtLeastOneItem
	// ErrLoadFailure marks a ResourceLoader failure while fetching an
	// external schema.
	ErrLoadFailure
	// ErrJSONSerializationError marks external bytes that were not valid JSON.
	ErrJSONSerializationError
	// ErrInvalidSchema marks an external document whose content failed
	// to parse as a schema.
	ErrInvalidSchema
	// ErrReferenceResolution marks a $ref that could not be bound to a node.
	ErrReferenceResolution
)

var parseErrorKindNames = [...]string{
	ErrInvalidClass:           "invalid-class",
	ErrInvalidValue:           "invalid-value",
	ErrRequiresAtLeastOneItem: "requires-at-least-one-item",
	ErrLoadFailure:            "load-failure",
	ErrJSONSerializationError: "json-serialization-error",
	ErrInvalidSchema:          "invalid-schema",
	ErrReferenceResolution:    "reference-resolution",
}

func (k ParseErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(parseErrorKindNames) {
		return parseErrorKindNames[k]
	}
	return "unknown-parse-error"
}

// ParseError is a fatal schema-parse fault. When constructed from a
// lower-level cause (a regex compile failure, a loader I/O error, a JSON
// syntax error), the cause is wrapped with github.com/pkg/errors so a
// stack trace survives for diagnostics, mirroring
// itayankri-go-json-schema's errors.go.
type ParseError struct {
	Kind ParseErrorKind
	Path string
	Msg  string
	err  error
}

func newParseError(kind ParseErrorKind, msg string, cause error) *ParseError {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &ParseError{Kind: kind, Msg: msg, err: cause}
}

func newParseErrorAt(kind ParseErrorKind, path, msg string, cause error) *ParseError {
	e := newParseError(kind, msg, cause)
	e.Path = path
	return e
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return e.Kind.String() + " at " + e.Path + ": " + e.Msg
	}
	return e.Kind.String() + ": " + e.Msg
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.err }
