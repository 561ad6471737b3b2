// Package config provides the voxstruct CLI's configuration: a small
// TOML file plus VOXSTRUCT_-prefixed environment overrides, adapted
// from the teacher's reflection-based env binder but scoped down to
// the handful of settings the CLI actually exposes.
package config

// Config is the complete voxstruct CLI configuration.
type Config struct {
	// Default subcommand when none is given on the command line.
	DefaultCommand string `toml:"default_command" env:"DEFAULT_COMMAND" default:"transform"`

	// Output format: "yaml" or "json".
	OutputFormat string `toml:"output_format" env:"OUTPUT_FORMAT" default:"yaml"`

	// ColorOutput gates ANSI diagnostics; the CLI itself also checks
	// isatty before honoring this.
	ColorOutput bool `toml:"color_output" env:"COLOR_OUTPUT" default:"true"`

	// IndentWidth controls pretty-printed output indentation.
	IndentWidth int `toml:"indent_width" env:"INDENT_WIDTH" default:"2"`

	// StrictMode is loaded like every other setting, but no CLI command
	// reads it; validate always reports unexpected keys as errors.
	StrictMode bool `toml:"strict_mode" env:"STRICT_MODE" default:"false"`

	// Debug/trace enable the log package's verbose output.
	Debug bool `toml:"debug" env:"DEBUG" default:"false"`
	Trace bool `toml:"trace" env:"TRACE" default:"false"`
}

// Default returns the configuration's built-in defaults.
func Default() *Config {
	return &Config{
		DefaultCommand: "transform",
		OutputFormat:   "yaml",
		ColorOutput:    true,
		IndentWidth:    2,
		StrictMode:     false,
	}
}
