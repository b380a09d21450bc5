package mdbuild

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var whitespaceRun = regexp.MustCompile(`\s+`)

// SingleLine flattens text for use as a heading.
// Newlines are deleted rather than turned into spaces, every remaining run of
// whitespace becomes a single space, and the result is trimmed.
func SingleLine(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// graphemeCount returns the number of user-perceived characters in text.
func graphemeCount(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
