package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomdbuild/pkg/inspect"
	"github.com/yaklabco/gomdbuild/pkg/runner"
)

// jsonVersion is bumped when JSONOutput changes incompatibly.
const jsonVersion = "1"

// JSONOutput is the document written by the JSON reporter.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult holds either a report or the error that prevented one.
type JSONFileResult struct {
	Path   string          `json:"path"`
	Report *inspect.Report `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// JSONSummary aggregates the reports of every inspected file.
type JSONSummary struct {
	FilesInspected int             `json:"files_inspected"`
	FilesErrored   int             `json:"files_errored"`
	Totals         *inspect.Report `json:"totals"`
}

// JSONReporter writes results as one JSON document.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(toJSON(result, r.opts.WorkingDir)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func toJSON(result *runner.Result, workDir string) *JSONOutput {
	out := &JSONOutput{
		Version: jsonVersion,
		Files:   []JSONFileResult{},
		Summary: JSONSummary{Totals: &inspect.Report{}},
	}
	if result == nil {
		return out
	}

	for _, file := range result.Files {
		entry := JSONFileResult{Path: displayPath(file.Path, workDir), Report: file.Report}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		out.Files = append(out.Files, entry)
	}

	out.Summary.FilesInspected = result.Stats.FilesInspected
	out.Summary.FilesErrored = result.Stats.FilesErrored
	if result.Stats.Totals != nil {
		out.Summary.Totals = result.Stats.Totals
	}
	return out
}
