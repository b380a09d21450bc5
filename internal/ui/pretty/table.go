package pretty

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdbuild/pkg/inspect"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minBlockWidth    = 16
	minCountWidth    = 5
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "…"
)

// TableFormatter formats inspection reports as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatReport formats a report as a two-column table of block counts,
// followed by the fenced code languages when there are any.
func (t *TableFormatter) FormatReport(path string, report *inspect.Report) string {
	if report == nil {
		return ""
	}

	var builder strings.Builder

	title := t.styles.FilePath.Render(path) + t.styles.Dim.Render(" ("+report.Flavor+")")
	builder.WriteString(title + "\n")

	rows := report.Blocks()
	if len(rows) == 0 {
		builder.WriteString(t.styles.Dim.Render(" no blocks found") + "\n")
		return builder.String()
	}

	blockWidth, countWidth := t.columnWidths(rows)
	total := blockWidth + countWidth + tablePadding*2

	builder.WriteString(t.styles.TableHeader.Render(
		" " + runewidth.FillRight("BLOCK", blockWidth) + "  " + runewidth.FillLeft("COUNT", countWidth)))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for _, row := range rows {
		name := runewidth.Truncate(row.Name, blockWidth, ellipsis)
		builder.WriteString(" " + runewidth.FillRight(name, blockWidth) + "  ")
		builder.WriteString(t.styles.TableCount.Render(runewidth.FillLeft(strconv.Itoa(row.Count), countWidth)))
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
	builder.WriteString("\n")

	if len(report.CodeLanguages) > 0 {
		builder.WriteString(t.formatLanguages(report.CodeLanguages))
		builder.WriteString("\n")
	}

	return builder.String()
}

// columnWidths sizes the block column to its widest name within the
// terminal width.
func (t *TableFormatter) columnWidths(rows []inspect.Row) (int, int) {
	blockWidth, countWidth := minBlockWidth, minCountWidth
	for _, row := range rows {
		blockWidth = max(blockWidth, runewidth.StringWidth(row.Name))
		countWidth = max(countWidth, len(strconv.Itoa(row.Count)))
	}

	if excess := blockWidth + countWidth + tablePadding*2 - t.termWidth; excess > 0 {
		blockWidth = max(minBlockWidth, blockWidth-excess)
	}
	return blockWidth, countWidth
}

// formatLanguages lists distinct code languages in first-seen order,
// truncated to the terminal width.
func (t *TableFormatter) formatLanguages(langs []string) string {
	seen := make(map[string]bool, len(langs))
	unique := make([]string, 0, len(langs))
	for _, lang := range langs {
		if !seen[lang] {
			seen[lang] = true
			unique = append(unique, lang)
		}
	}

	const label = " languages: "
	line := runewidth.Truncate(strings.Join(unique, ", "), t.termWidth-runewidth.StringWidth(label), ellipsis)
	return t.styles.Dim.Render(label) + line
}
