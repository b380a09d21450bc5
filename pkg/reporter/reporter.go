// Package reporter writes the results of an inspection run.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/gomdbuild/pkg/runner"
)

// Reporter formats and writes inspection results.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
//
//nolint:ireturn // Factory returns the implementation selected by Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts, true), nil
	case FormatSummary:
		return NewTextReporter(opts, false), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath makes path relative to workDir when that stays inside it.
func displayPath(path, workDir string) string {
	if workDir == "" || path == "-" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}
