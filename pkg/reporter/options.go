package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer in front of the output writer.
const bufWriterSize = 64 * 1024

// Options configures a Reporter.
type Options struct {
	// Writer receives the output. Nil means os.Stdout.
	Writer io.Writer
	Format Format

	// Color is "auto", "always" or "never".
	Color     string
	TermWidth int

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir, when set, makes reported paths relative to it.
	WorkingDir string
}

// DefaultOptions writes text to stdout with automatic color.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatText,
		Color:  "auto",
	}
}
