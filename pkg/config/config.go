// Package config defines core configuration types for gomdbuild.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "fmt"

// Flavor specifies the Markdown flavor used to verify generated output.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid reports whether f is a known flavor.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Log levels accepted in configuration.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// ValidLogLevels lists accepted log levels in increasing severity.
func ValidLogLevels() []string {
	return []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// Config is the root configuration structure for gomdbuild.
type Config struct {
	// Flavor is the Markdown flavor used when verifying output.
	Flavor Flavor `yaml:"flavor"`

	// DetectLanguage fills in missing code block languages.
	DetectLanguage bool `yaml:"detect_language"`

	// Verify parses rendered output and rejects documents whose structure
	// does not match the description.
	Verify bool `yaml:"verify"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Output is the destination file. Empty means stdout.
	Output string `yaml:"-"`

	// Color controls styled output.
	Color ColorMode `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:   FlavorGFM,
		LogLevel: LogLevelInfo,
		Color:    ColorAuto,
	}
}

// Validate checks enumerated fields. Empty values are accepted and mean the
// default.
func (c *Config) Validate() error {
	if c.Flavor != "" && !c.Flavor.IsValid() {
		return fmt.Errorf("%w: flavor %q must be %q or %q",
			ErrInvalidConfig, c.Flavor, FlavorCommonMark, FlavorGFM)
	}
	if c.LogLevel != "" && !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("%w: log_level %q must be one of %v",
			ErrInvalidConfig, c.LogLevel, ValidLogLevels())
	}
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("%w: color %q must be auto, always or never", ErrInvalidConfig, c.Color)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels() {
		if l == level {
			return true
		}
	}
	return false
}
