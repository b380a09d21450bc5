package mdbuild

import (
	"errors"
	"fmt"
	"strings"
)

// Alignment is the horizontal alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ErrInvalidAlignment is returned by ParseAlignment for unknown names.
var ErrInvalidAlignment = errors.New("invalid alignment")

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center" or "right", ignoring case.
// An empty string is left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
	}
}

// delimiter returns the delimiter-row cell for the alignment, including the
// closing pipe.
func (a Alignment) delimiter() string {
	switch a {
	case AlignCenter:
		return ":-:|"
	case AlignRight:
		return "-:|"
	default:
		return ":-|"
	}
}

// Table writes a pipe table. Columns without an entry in alignments are left
// aligned. Rows are written as given, whatever their length, and no blank
// line follows the last row.
func (b *Builder) Table(columns []string, rows [][]string, alignments ...Alignment) *Builder {
	b.WriteLine(tableRow(columns))

	var sep strings.Builder
	sep.WriteString("|")
	for i := range columns {
		align := AlignLeft
		if i < len(alignments) {
			align = alignments[i]
		}
		sep.WriteString(align.delimiter())
	}
	b.WriteLine(sep.String())

	for _, row := range rows {
		b.WriteLine(tableRow(row))
	}
	return b
}

func tableRow(cells []string) string {
	return "|" + strings.Join(cells, "|") + "|"
}
