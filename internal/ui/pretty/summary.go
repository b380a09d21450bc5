package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdbuild/pkg/inspect"
)

// RenderStats describes one render run.
type RenderStats struct {
	// Output is the destination path.
	Output string

	// Blocks is the number of top-level blocks rendered.
	Blocks int

	// Bytes is the size of the generated Markdown.
	Bytes int

	// Written is false when the destination already held the same content.
	Written bool

	// Verified is true when the output passed structural verification.
	Verified bool
}

// FormatRenderSummary formats a render run as a single line.
// Example: "Wrote README.md (12 blocks, 1.4 KiB, verified)".
func (s *Styles) FormatRenderSummary(stats RenderStats) string {
	details := []string{
		pluralize(stats.Blocks, "block", "blocks"),
		formatBytes(stats.Bytes),
	}
	if stats.Verified {
		details = append(details, s.Success.Render("verified"))
	}
	detail := s.Dim.Render("(") + strings.Join(details, s.Dim.Render(", ")) + s.Dim.Render(")")

	if !stats.Written {
		return s.Dim.Render("Unchanged") + " " + s.FilePath.Render(stats.Output) + " " + detail + "\n"
	}
	return s.Success.Render("Wrote") + " " + s.FilePath.Render(stats.Output) + " " + detail + "\n"
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// formatBytes renders a size in B or KiB with one decimal.
func formatBytes(n int) string {
	const kib = 1024
	if n < kib {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/kib)
}

// InspectStats describes one inspection run over several files.
type InspectStats struct {
	Files   int
	Errored int

	// Totals sums the counts of every inspected file.
	Totals *inspect.Report
}

// FormatInspectSummary formats an inspection run as a single line.
// Example: "Inspected 3 files: 4 headings, 2 tables, 5 code blocks".
func (s *Styles) FormatInspectSummary(stats InspectStats) string {
	var builder strings.Builder
	builder.WriteString(s.SummaryTitle.Render("Inspected " + pluralize(stats.Files, "file", "files")))
	if stats.Errored > 0 {
		builder.WriteString(" " + s.Failure.Render("("+strconv.Itoa(stats.Errored)+" failed)"))
	}

	var parts []string
	if totals := stats.Totals; totals != nil {
		for _, part := range []struct {
			n                int
			singular, plural string
		}{
			{totals.TotalHeadings(), "heading", "headings"},
			{totals.Paragraphs, "paragraph", "paragraphs"},
			{totals.BulletLists + totals.OrderedLists, "list", "lists"},
			{totals.Tables, "table", "tables"},
			{totals.CodeBlocks, "code block", "code blocks"},
		} {
			if part.n > 0 {
				parts = append(parts, s.SummaryValue.Render(pluralize(part.n, part.singular, part.plural)))
			}
		}
	}
	if len(parts) > 0 {
		builder.WriteString(": " + strings.Join(parts, ", "))
	}

	builder.WriteString("\n")
	return builder.String()
}
