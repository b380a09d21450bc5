package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdbuild/pkg/inspect"
)

// FormatMismatches lists verification differences for a rendered file.
func (s *Styles) FormatMismatches(path string, mismatches []inspect.Mismatch) string {
	if len(mismatches) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(s.Error.Render("verification failed") + " " + s.FilePath.Render(path) + "\n")

	width := 0
	for _, m := range mismatches {
		width = max(width, runewidth.StringWidth(m.Block))
	}

	for _, m := range mismatches {
		builder.WriteString(fmt.Sprintf("  %s  expected %s, parsed %s\n",
			runewidth.FillRight(m.Block, width),
			s.Expected.Render(strconv.Itoa(m.Expected)),
			s.Actual.Render(strconv.Itoa(m.Actual)),
		))
	}

	return builder.String()
}
