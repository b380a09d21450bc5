package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// Template formats.
const (
	TemplateFormatYAML = "yaml"
	TemplateFormatJSON = "json"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its documentation. A minimal template
	// sets only the flavor and leaves the rest commented out.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// setting documents one configuration key.
type setting struct {
	key         string
	value       string
	description string
}

// settings lists the persisted keys in file order.
func settings(defaults *Config) []setting {
	return []setting{
		{
			key:         "flavor",
			value:       string(defaults.Flavor),
			description: "Markdown flavor used to verify rendered output: commonmark or gfm.",
		},
		{
			key:   "detect_language",
			value: fmt.Sprintf("%t", defaults.DetectLanguage),
			description: "Detect the language of code blocks that do not name one. " +
				`Blocks with language "auto" are always detected.`,
		},
		{
			key:   "verify",
			value: fmt.Sprintf("%t", defaults.Verify),
			description: "Parse rendered output and fail when the block structure " +
				"differs from the document description.",
		},
		{
			key:         "log_level",
			value:       defaults.LogLevel,
			description: "Logging verbosity: debug, info, warn or error.",
		},
	}
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", TemplateFormatYAML:
	case TemplateFormatJSON:
		return templateToJSON(NewConfig())
	default:
		return nil, fmt.Errorf("%w: template format %q must be yaml or json", ErrInvalidConfig, opts.Format)
	}

	defaults := NewConfig()

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n")

	for i, s := range settings(defaults) {
		buf.WriteString("\n")
		if opts.Full {
			buf.WriteString("# " + wrapComment(s.description, commentWrapWidth) + "\n")
		}
		// The minimal template keeps only the first setting active.
		if opts.Full || i == 0 {
			fmt.Fprintf(&buf, "%s: %s\n", s.key, s.value)
		} else {
			fmt.Fprintf(&buf, "# %s: %s\n", s.key, s.value)
		}
	}

	return buf.Bytes(), nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n# ")
}

// templateToJSON writes the persisted defaults as indented JSON.
func templateToJSON(defaults *Config) ([]byte, error) {
	cfg := map[string]any{
		"flavor":          defaults.Flavor,
		"detect_language": defaults.DetectLanguage,
		"verify":          defaults.Verify,
		"log_level":       defaults.LogLevel,
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gomdbuild configuration
# See: https://github.com/yaklabco/gomdbuild`
}
