// Package config provides configuration management for the tabwell CLI.
//
// Settings are layered: built-in defaults, then an optional
// tabwell.yaml in the working directory, then command-line flags.
// There is deliberately no environment-variable layer; the tool's
// behavior is driven only by its invocation and config file.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Input and Output are the CSV paths for the clean command.
	Input  string `koanf:"input"`
	Output string `koanf:"output"`

	// NAToken is an extra sentinel treated as a missing value.
	NAToken string `koanf:"na_token"`

	// Missing is the missing-value policy: drop, fill, or impute.
	Missing string `koanf:"missing"`
	// FillValue is the replacement value for the fill policy.
	FillValue string `koanf:"fill_value"`

	// Dedupe removes exact duplicate rows; on by default.
	Dedupe bool `koanf:"dedupe"`
	// FoldCase makes duplicate comparison case-insensitive.
	FoldCase bool `koanf:"fold_case"`

	// SortBy names the sort column; empty disables sorting.
	SortBy string `koanf:"sort_by"`
	// Descending reverses the sort direction.
	Descending bool `koanf:"descending"`

	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`
	// Format selects the render mode: auto, text, markdown, or json.
	Format string `koanf:"format"`
}

// Default values applied before the config file and flags.
const (
	DefaultMissing = "drop"
	DefaultFormat  = "auto"
)
