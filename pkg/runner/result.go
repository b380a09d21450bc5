package runner

import "github.com/yaklabco/gomdbuild/pkg/inspect"

// FileOutcome is the inspection result for one file.
type FileOutcome struct {
	Path string

	// Report is nil when Error is set.
	Report *inspect.Report

	Error error
}

// Stats summarizes a run.
type Stats struct {
	FilesDiscovered int
	FilesInspected  int
	FilesErrored    int

	// Totals sums the reports of every inspected file.
	Totals *inspect.Report
}

// Result is the outcome of a run, ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any file could not be inspected.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newResult(flavor string, capacity int) *Result {
	return &Result{
		Files: make([]FileOutcome, 0, capacity),
		Stats: Stats{Totals: &inspect.Report{Flavor: flavor}},
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesInspected++
	r.Stats.Totals.Add(outcome.Report)
}

// Single wraps the report for one input, such as stdin, in a Result.
func Single(path string, report *inspect.Report) *Result {
	result := newResult(report.Flavor, 1)
	result.Stats.FilesDiscovered = 1
	result.accumulate(FileOutcome{Path: path, Report: report})
	return result
}
