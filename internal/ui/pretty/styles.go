// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomdbuild/pkg/config"
)

// ANSI colors used by the CLI.
const (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorCyan   = lipgloss.Color("14")
	colorSilver = lipgloss.Color("7")
	colorGray   = lipgloss.Color("8")
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	Error    lipgloss.Style
	FilePath lipgloss.Style
	Message  lipgloss.Style

	// Verification counts.
	Expected lipgloss.Style
	Actual   lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableCount     lipgloss.Style

	Dim lipgloss.Style
}

// NewStyles creates styles for output with or without color. Without color
// every style renders its input unchanged.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	fg := func(c lipgloss.Color) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return plain.Foreground(c)
	}
	bold := func(s lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return s.Bold(true)
	}

	return &Styles{
		Error:    bold(fg(colorRed)),
		FilePath: bold(plain),
		Message:  plain,

		Expected: fg(colorGreen),
		Actual:   fg(colorRed),

		SummaryTitle: bold(plain),
		SummaryValue: plain,
		Success:      bold(fg(colorGreen)),
		Failure:      bold(fg(colorRed)),

		TableHeader:    bold(fg(colorSilver)),
		TableSeparator: fg(colorGray),
		TableCount:     fg(colorCyan),

		Dim: fg(colorGray),
	}
}

// IsColorEnabled reports whether output to writer should be colored.
// In auto mode (also used for unknown modes) color requires a terminal and
// an unset NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch config.ColorMode(mode) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	case config.ColorAuto:
	}

	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
