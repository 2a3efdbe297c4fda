// Package config provides configuration management for the loctab CLI.
//
// Settings come from four layers, lowest to highest precedence: built-in
// defaults, a loctab.yaml config file, LOCTAB_-prefixed environment
// variables, and command-line flags.
package config

// Defaults for settings not provided by any configuration layer.
const (
	DefaultSelectColumn = 1
	DefaultSkipRows     = 0
)

// Config holds the resolved CLI configuration.
type Config struct {
	// InputFile is the input path; empty means stdin.
	InputFile string `koanf:"input_file"`
	// OutputFile is the output path; empty means stdout.
	OutputFile string `koanf:"output_file"`
	// SelectColumn is the 1-based value column used when converting the
	// tabular format to JSON.
	SelectColumn int `koanf:"select_column"`
	// SkipRows is the number of leading rows discarded before parsing.
	SkipRows int `koanf:"skip_rows"`
	// CRLF selects Windows line endings when writing the tabular format.
	CRLF bool `koanf:"crlf"`
	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`
}
