package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomdbuild/internal/ui/pretty"
	"github.com/yaklabco/gomdbuild/pkg/runner"
)

// TextReporter writes a table per file followed by a one-line summary.
type TextReporter struct {
	opts      Options
	perFile   bool
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTextReporter creates a text reporter. With perFile false only the
// summary line is written.
func NewTextReporter(opts Options, perFile bool) *TextReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TextReporter{
		opts:      opts,
		perFile:   perFile,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, opts.TermWidth),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		_, err = fmt.Fprintln(r.bw, r.styles.Dim.Render("No Markdown files found."))
		return err
	}

	if r.perFile {
		for i, file := range result.Files {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("report cancelled: %w", err)
			}
			if i > 0 {
				r.bw.WriteString("\n")
			}
			r.writeFile(file)
		}
		// A single file needs no summary.
		if len(result.Files) == 1 && result.Stats.FilesErrored == 0 {
			return nil
		}
		r.bw.WriteString("\n")
	}

	r.bw.WriteString(r.styles.FormatInspectSummary(pretty.InspectStats{
		Files:   result.Stats.FilesDiscovered,
		Errored: result.Stats.FilesErrored,
		Totals:  result.Stats.Totals,
	}))
	return nil
}

func (r *TextReporter) writeFile(file runner.FileOutcome) {
	path := displayPath(file.Path, r.opts.WorkingDir)
	if file.Error != nil {
		r.bw.WriteString(r.styles.FilePath.Render(path) + " " +
			r.styles.Error.Render("error") + " " + r.styles.Message.Render(file.Error.Error()) + "\n")
		return
	}
	r.bw.WriteString(r.formatter.FormatReport(path, file.Report))
}
