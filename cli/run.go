package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prachigauriar/twvalidation/localize"
	"github.com/prachigauriar/twvalidation/schema"
	"github.com/prachigauriar/twvalidation/validator"
)

// Report is one instance document's validation outcome, serialized for
// --format json. It reuses localize.Detail rather than inventing a
// parallel tree-shaped error representation, since the detail list
// already walks verror.Error into path-qualified, localized leaves.
type Report struct {
	File    string            `json:"file"`
	Valid   bool              `json:"valid"`
	Details []localize.Detail `json:"details,omitempty"`
}

// Run compiles the schema at cfg.SchemaPath and validates each of
// instancePaths against it, writing a report for each to stdout and any
// non-fatal compile warnings to stderr. It returns allValid=false if any
// instance failed validation, independent of the returned error, which
// only ever reports a fatal I/O/decode/compile fault — mirroring
// MacroPower-x/cmd/magicschema/main.go's run(), adapted from "generate
// one schema" to "validate N instances against one schema."
func Run(cfg *Config, instancePaths []string, stdin io.Reader, stdout, stderr io.Writer) (allValid bool, err error) {
	bundle, err := localize.New()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCompileInput, err)
	}
	localizer := bundle.NewLocalizer(cfg.Locale)

	schemaBytes, err := readFile(cfg.SchemaPath, stdin)
	if err != nil {
		return false, err
	}
	schemaVal, err := decodeDocument(schemaBytes)
	if err != nil {
		return false, err
	}

	compiler := schema.NewCompiler()
	v, warnings, err := compiler.CompileValue(schemaVal)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCompileInput, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(stderr, "warning: %s: %s\n", w.Path, w.Msg)
	}

	allValid = true
	for _, path := range instancePaths {
		data, err := readFile(path, stdin)
		if err != nil {
			return false, err
		}
		val, err := decodeDocument(data)
		if err != nil {
			return false, err
		}

		verr := validator.Validate(v, val)
		report := Report{File: path, Valid: verr == nil}
		if verr != nil {
			allValid = false
			report.Details = localize.Details(localizer, verr)
		}

		if err := writeReport(stdout, cfg.Format, report); err != nil {
			return false, err
		}
	}

	return allValid, nil
}

func writeReport(w io.Writer, format string, report Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	default:
		return writeReportText(w, report)
	}
}

func writeReportText(w io.Writer, report Report) error {
	if report.Valid {
		_, err := fmt.Fprintf(w, "%s: ok\n", report.File)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s: invalid\n", report.File); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	for _, d := range report.Details {
		path := d.Path
		if path == "" {
			path = "(root)"
		}
		if _, err := fmt.Fprintf(w, "  %s: %s [%s]\n", path, d.Message, d.Code); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	return nil
}
