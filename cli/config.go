package cli

// Flags holds CLI flag names for the validate command, so callers can
// customize flag names while keeping sensible defaults — the same
// indirection MacroPower-x/magicschema/config.go's Flags type gives its
// own command.
type Flags struct {
	Schema string
	Locale string
	Format string
}

// Config holds CLI flag values for the validate command.
//
// Create one with NewConfig; the validate command registers its flags.
type Config struct {
	Flags Flags

	SchemaPath string
	Locale     string
	Format     string
}

// NewConfig returns a Config with default flag names and values.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Schema: "schema",
			Locale: "locale",
			Format: "format",
		},
		Locale: "en",
		Format: "text",
	}
}
