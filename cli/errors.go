package cli

import "errors"

// Sentinel errors the command layer wraps with additional context,
// grounded on MacroPower-x/magicschema/generator.go's ErrReadInput/
// ErrWriteOutput pattern (plain errors.New + fmt.Errorf("%w: ...")
// rather than github.com/pkg/errors, matching that package's own idiom
// for its CLI-adjacent layer).
var (
	ErrReadInput    = errors.New("read input")
	ErrDecodeInput  = errors.New("decode input")
	ErrCompileInput = errors.New("compile schema")
	ErrWriteOutput  = errors.New("write output")
)
