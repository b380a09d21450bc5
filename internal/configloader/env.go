package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/gomdbuild/pkg/config"
)

// envVarPrefix is the prefix for all gomdbuild environment variables.
const envVarPrefix = "GOMDBUILD_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FLAVOR":          {field: "flavor", typ: envTypeString, description: "Markdown flavor: commonmark or gfm"},
	"DETECT_LANGUAGE": {field: "detect_language", typ: envTypeBool, description: "Detect missing code block languages: true or false"},
	"VERIFY":          {field: "verify", typ: envTypeBool, description: "Verify rendered structure: true or false"},
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString, description: "Log level: debug, info, warn or error"},
}

// LoadFromEnv reads GOMDBUILD_* environment variables into a Layer.
// Empty variables are treated as unset.
func LoadFromEnv() (*Layer, error) {
	layer := &Layer{}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(layer, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	return layer, nil
}

// applyEnvValue applies a single environment variable value to the layer.
func applyEnvValue(layer *Layer, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(layer, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(layer, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the layer by field name.
func setStringField(layer *Layer, field, value string) error {
	switch field {
	case "flavor":
		flavor := config.Flavor(value)
		layer.Flavor = &flavor
	case "log_level":
		layer.LogLevel = &value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the layer by field name.
func setBoolField(layer *Layer, field string, value bool) error {
	switch field {
	case "detect_language":
		layer.DetectLanguage = &value
	case "verify":
		layer.Verify = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
