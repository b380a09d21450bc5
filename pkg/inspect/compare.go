package inspect

import (
	"fmt"
	"strings"
)

// Mismatch is a block count that differs between two reports.
type Mismatch struct {
	Block    string `json:"block"`
	Expected int    `json:"expected"`
	Actual   int    `json:"actual"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %d, got %d", m.Block, m.Expected, m.Actual)
}

// CompareMode selects how counts are compared.
type CompareMode int

const (
	// Exact requires equal counts.
	Exact CompareMode = iota

	// AtLeast accepts actual counts above the expected ones. It is used
	// when part of the document is opaque, such as raw Markdown.
	AtLeast
)

// Compare lists the counts in actual that do not match expected.
// Paragraphs are not compared; list items parse as plain text blocks and
// inline HTML splits paragraphs, so their count is not predictable.
func Compare(expected, actual *Report, mode CompareMode) []Mismatch {
	if expected == nil || actual == nil {
		return nil
	}

	want := expected.rows()
	got := actual.rows()

	var mismatches []Mismatch
	for i := range want {
		if want[i].Name == blockParagraphs {
			continue
		}
		e, a := want[i].Count, got[i].Count
		if e == a || (mode == AtLeast && a > e) {
			continue
		}
		mismatches = append(mismatches, Mismatch{Block: want[i].Name, Expected: e, Actual: a})
	}
	return mismatches
}

// MismatchError reports a failed structural comparison.
type MismatchError struct {
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return "structure mismatch: " + strings.Join(parts, "; ")
}
