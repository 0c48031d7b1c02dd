package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the twvalidate command tree: a root command
// whose only real subcommand is validate, mirroring
// MacroPower-x/cmd/magicschema/main.go's single-purpose root command
// shape (SilenceErrors/SilenceUsage plus a RunE that delegates to a
// plain function so it stays testable without invoking Cobra).
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "twvalidate",
		Short: "Compile a JSON Schema document and validate instances against it",
		Long: `twvalidate compiles a draft-04 JSON Schema document into a validator and
checks one or more instance documents against it, printing a structured
report of any failures. Schema and instance documents may be given as
JSON or YAML.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newValidateCommand())
	return root
}

func newValidateCommand() *cobra.Command {
	cfg := NewConfig()

	cmd := &cobra.Command{
		Use:           "validate [flags] <instance-file...>",
		Short:         "Validate one or more instance documents against a schema",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			allValid, err := Run(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !allValid {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.SchemaPath, cfg.Flags.Schema, "s", "",
		"schema file path (- for stdin)")
	cmd.Flags().StringVarP(&cfg.Locale, cfg.Flags.Locale, "l", cfg.Locale,
		"locale for error messages (en, zh-Hans)")
	cmd.Flags().StringVarP(&cfg.Format, cfg.Flags.Format, "f", cfg.Format,
		"report format (text, json)")
	_ = cmd.MarkFlagRequired(cfg.Flags.Schema)

	return cmd
}

// errInvalid is returned by validate's RunE when every document was read
// and compiled fine but at least one instance failed validation — Main
// checks for it with errors.Is to choose exit code 1 without printing a
// redundant error line, since the per-instance report already said so.
var errInvalid = errors.New("one or more instances failed validation")

// Main is the twvalidate entry point's body, factored out of
// cmd/twvalidate/main.go so it can be exercised by tests without an
// os.Exit.
func Main() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return 1
	}
	return 0
}
