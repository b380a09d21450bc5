package reporter

import (
	"fmt"
	"slices"
)

// Format selects how inspection results are written.
type Format string

const (
	// FormatText writes one block table per file and a summary line.
	FormatText Format = "text"
	// FormatJSON writes a single JSON document.
	FormatJSON Format = "json"
	// FormatSummary writes only the summary line.
	FormatSummary Format = "summary"
)

//nolint:gochecknoglobals // Read-only lookup table.
var formats = []Format{FormatText, FormatJSON, FormatSummary}

// ParseFormat converts a flag value to a Format. The empty string means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if f := Format(name); f.IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be text, json or summary", name)
}

func (f Format) String() string { return string(f) }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}
