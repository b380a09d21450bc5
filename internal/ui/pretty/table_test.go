package pretty_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/internal/ui/pretty"
	"github.com/yaklabco/gomdbuild/pkg/inspect"
)

func TestFormatReport(t *testing.T) {
	report := &inspect.Report{
		Flavor:        inspect.FlavorGFM,
		Paragraphs:    2,
		CodeBlocks:    3,
		CodeLanguages: []string{"go", "sh", "go"},
	}
	report.Headings[1] = 1

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	lines := strings.Split(strings.TrimSuffix(formatter.FormatReport("README.md", report), "\n"), "\n")

	require.Len(t, lines, 8)
	assert.Equal(t, "README.md (gfm)", lines[0])
	assert.Equal(t, fmt.Sprintf(" %-16s  %5s", "BLOCK", "COUNT"), lines[1])
	assert.Equal(t, strings.Repeat("=", 25), lines[2])
	assert.Equal(t, fmt.Sprintf(" %-16s  %5d", "heading1", 1), lines[3])
	assert.Equal(t, fmt.Sprintf(" %-16s  %5d", "paragraphs", 2), lines[4])
	assert.Equal(t, fmt.Sprintf(" %-16s  %5d", "code blocks", 3), lines[5])
	assert.Equal(t, strings.Repeat("-", 25), lines[6])
	assert.Equal(t, " languages: go, sh", lines[7])
}

func TestFormatReport_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)

	out := formatter.FormatReport("empty.md", &inspect.Report{Flavor: inspect.FlavorCommonMark})
	assert.Equal(t, "empty.md (commonmark)\n no blocks found\n", out)

	assert.Empty(t, formatter.FormatReport("nil.md", nil))
}

func TestFormatReport_TruncatesLanguages(t *testing.T) {
	report := &inspect.Report{
		Flavor:        inspect.FlavorGFM,
		CodeBlocks:    4,
		CodeLanguages: []string{"javascript", "typescript", "python", "dockerfile"},
	}

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 30)
	out := formatter.FormatReport("x.md", report)

	last := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	langLine := last[len(last)-1]
	assert.True(t, strings.HasPrefix(langLine, " languages: javascript"))
	assert.True(t, strings.HasSuffix(langLine, "…"))
	assert.LessOrEqual(t, len([]rune(langLine)), 30)
}

func TestFormatMismatches(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatMismatches("README.md", nil))

	out := styles.FormatMismatches("README.md", []inspect.Mismatch{
		{Block: "tables", Expected: 1, Actual: 0},
		{Block: "bullet lists", Expected: 2, Actual: 1},
	})
	assert.Equal(t,
		"verification failed README.md\n"+
			"  tables        expected 1, parsed 0\n"+
			"  bullet lists  expected 2, parsed 1\n",
		out)
}

func TestFormatRenderSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats pretty.RenderStats
		want  string
	}{
		{
			name:  "written and verified",
			stats: pretty.RenderStats{Output: "README.md", Blocks: 12, Bytes: 1434, Written: true, Verified: true},
			want:  "Wrote README.md (12 blocks, 1.4 KiB, verified)\n",
		},
		{
			name:  "unchanged",
			stats: pretty.RenderStats{Output: "docs/x.md", Blocks: 1, Bytes: 20},
			want:  "Unchanged docs/x.md (1 block, 20 B)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatRenderSummary(tt.stats))
		})
	}
}

func TestFormatInspectSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	totals := &inspect.Report{Paragraphs: 1, BulletLists: 1, OrderedLists: 1, CodeBlocks: 2}
	totals.Headings[1] = 2
	totals.Headings[3] = 1

	assert.Equal(t,
		"Inspected 3 files (1 failed): 3 headings, 1 paragraph, 2 lists, 2 code blocks\n",
		styles.FormatInspectSummary(pretty.InspectStats{Files: 3, Errored: 1, Totals: totals}))

	assert.Equal(t, "Inspected 1 file\n", styles.FormatInspectSummary(pretty.InspectStats{Files: 1}))
}
