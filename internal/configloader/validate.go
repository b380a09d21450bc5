package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/gomdbuild/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "flavor").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Unwrap lets callers match validation failures with config.ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return config.ErrInvalidConfig
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a resolved configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	validateFlavor(cfg.Flavor, result)
	validateLogLevel(cfg.LogLevel, result)

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Verify && cfg.Flavor == config.FlavorCommonMark {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "verify",
			Value:   cfg.Verify,
			Message: "commonmark does not recognize tables; documents with tables will fail verification",
		})
	}

	return result
}

// ValidateLayerWithFile validates the fields a single file sets and
// attributes findings to filePath.
func ValidateLayerWithFile(layer *Layer, filePath string) *ValidationResult {
	result := &ValidationResult{}
	if layer == nil {
		return result
	}

	if layer.Flavor != nil {
		validateFlavor(*layer.Flavor, result)
	}
	if layer.LogLevel != nil {
		validateLogLevel(*layer.LogLevel, result)
	}

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	return result
}

func validateFlavor(flavor config.Flavor, result *ValidationResult) {
	if flavor != "" && !IsValidFlavor(flavor) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "flavor",
			Value:   flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", flavor),
		})
	}
}

func validateLogLevel(level string, result *ValidationResult) {
	if level != "" && !IsValidLogLevel(level) {
		result.Errors = append(result.Errors, ValidationError{
			Field: "log_level",
			Value: level,
			Message: fmt.Sprintf("invalid log level %q; must be one of: %s",
				level, strings.Join(config.ValidLogLevels(), ", ")),
		})
	}
}

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return f.IsValid()
}

// IsValidLogLevel returns true if the log level is valid.
func IsValidLogLevel(level string) bool {
	return slices.Contains(config.ValidLogLevels(), level)
}
