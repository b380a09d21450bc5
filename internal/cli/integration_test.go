package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/internal/cli"
	"github.com/yaklabco/gomdbuild/pkg/docspec"
	"github.com/yaklabco/gomdbuild/pkg/inspect"
	"github.com/yaklabco/gomdbuild/pkg/reporter"
)

const testDocument = `title: Demo
blocks:
  - type: paragraph
    text: Generated by a test.
  - type: code
    source: snippet.go
    language: auto
  - type: table
    columns: [Key, Value]
    rows:
      - [a, "1"]
`

// runCLI executes the root command with args and an isolating config file.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("flavor: gfm\n"), 0644))

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", cfgFile, "--color", "never"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeDocument creates a document description and its code source.
func writeDocument(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snippet.go"), []byte("package demo\n"), 0644))

	path := filepath.Join(dir, "document.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIntegration_RenderToStdout(t *testing.T) {
	t.Parallel()

	docPath := writeDocument(t, testDocument)

	stdout, _, err := runCLI(t, "render", docPath)
	require.NoError(t, err)

	assert.Equal(t,
		"Demo\n====\n\nGenerated by a test.\n\n```go\npackage demo\n```\n\n|Key|Value|\n|:-|:-|\n|a|1|\n",
		stdout)
}

func TestIntegration_RenderToFile(t *testing.T) {
	t.Parallel()

	docPath := writeDocument(t, testDocument)
	outPath := filepath.Join(t.TempDir(), "README.md")

	_, stderr, err := runCLI(t, "render", docPath, "-o", outPath, "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote "+outPath)
	assert.Contains(t, stderr, "verified")

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Demo\n====\n"))
	assert.True(t, strings.HasSuffix(string(content), "|a|1|\n"))

	_, stderr, err = runCLI(t, "render", docPath, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Unchanged "+outPath)
}

func TestIntegration_RenderVerifyFailure(t *testing.T) {
	t.Parallel()

	docPath := writeDocument(t, `blocks:
  - {type: bullets, items: [one]}
  - {type: bullets, items: [two]}
`)

	stdout, stderr, err := runCLI(t, "render", docPath, "--verify")
	require.ErrorIs(t, err, cli.ErrVerificationFailed)
	assert.Equal(t, cli.ExitVerifyFailed, cli.ExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "verification failed")
	assert.Contains(t, stderr, "bullet lists")
}

func TestIntegration_RenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		missing  bool
		wantCode int
		wantText string
	}{
		{
			name:     "unknown block",
			document: "blocks:\n  - {type: p, text: ok}\n  - {type: banner}\n",
			wantCode: cli.ExitDataError,
			wantText: "blocks[1]",
		},
		{
			name:     "bad alignment",
			document: "blocks:\n  - {type: table, columns: [A], align: [diagonal]}\n",
			wantCode: cli.ExitDataError,
			wantText: "align[0]",
		},
		{
			name:     "missing source",
			document: "blocks:\n  - {type: code, source: absent.go}\n",
			wantCode: cli.ExitIOError,
			wantText: "absent.go",
		},
		{
			name:     "missing document",
			missing:  true,
			wantCode: cli.ExitIOError,
			wantText: "nope.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			docPath := filepath.Join(t.TempDir(), "nope.yml")
			if !tt.missing {
				docPath = writeDocument(t, tt.document)
			}

			_, _, err := runCLI(t, "render", docPath)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

func TestIntegration_InvalidColor(t *testing.T) {
	t.Parallel()

	docPath := writeDocument(t, testDocument)

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", docPath, "--color", "rainbow"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_InspectJSON(t *testing.T) {
	t.Parallel()

	mdPath := filepath.Join(t.TempDir(), "README.md")
	md, err := docspec.Render(context.Background(), docspec.Sample(), docspec.Options{})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(mdPath, []byte(md+"\n"), 0644))

	stdout, _, err := runCLI(t, "inspect", mdPath, "--format", "json")
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.Len(t, output.Files, 1)
	report := output.Files[0].Report
	require.NotNil(t, report)
	assert.Equal(t, mdPath, output.Files[0].Path)
	assert.Equal(t, inspect.FlavorGFM, report.Flavor)
	assert.Equal(t, 1, report.Tables)
	assert.Equal(t, 1, report.HeadingCount(1))
	assert.Equal(t, []string{"sh"}, report.CodeLanguages)

	stdout, _, err = runCLI(t, "inspect", mdPath, "--format", "json", "--flavor", "commonmark")
	require.NoError(t, err)
	output = reporter.JSONOutput{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.Len(t, output.Files, 1)
	assert.Equal(t, inspect.FlavorCommonMark, output.Files[0].Report.Flavor)
	assert.Equal(t, 0, output.Summary.Totals.Tables)
}

func TestIntegration_InspectText(t *testing.T) {
	t.Parallel()

	mdPath := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("### Notes\n\n* a\n* b\n"), 0644))

	stdout, _, err := runCLI(t, "inspect", mdPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, mdPath+" (gfm)")
	assert.Contains(t, stdout, "BLOCK")
	assert.Contains(t, stdout, "heading3")
	assert.Contains(t, stdout, "list items")
}

func TestIntegration_InspectDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "drafts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.markdown"), []byte("```go\nx\n```\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drafts", "c.md"), []byte("text\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("# no\n"), 0644))

	stdout, _, err := runCLI(t, "inspect", dir, "--format", "summary", "--exclude", "**/drafts/**", "-j", "2")
	require.NoError(t, err)
	assert.Equal(t, "Inspected 2 files: 1 heading, 1 code block\n", stdout)

	stdout, _, err = runCLI(t, "inspect", dir, "--format", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Inspected 3 files: 1 heading, 1 paragraph, 1 code block\n", stdout)
}

func TestIntegration_InspectStdin(t *testing.T) {
	t.Parallel()

	cfgFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("flavor: gfm\n"), 0644))

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("-----------------------------------------\n"))
	cmd.SetArgs([]string{"inspect", "-", "--format", "json", "--config", cfgFile})

	require.NoError(t, cmd.Execute())

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &output))
	require.Len(t, output.Files, 1)
	assert.Equal(t, "-", output.Files[0].Path)
	assert.Equal(t, 1, output.Files[0].Report.ThematicBreaks)
}

func TestIntegration_InspectInvalidFormat(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "inspect", "README.md", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestIntegration_InitDocument(t *testing.T) {
	t.Parallel()

	docPath := filepath.Join(t.TempDir(), "document.yml")

	_, _, err := runCLI(t, "init", "-o", docPath)
	require.NoError(t, err)

	content, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# gomdbuild document description"))

	_, _, err = runCLI(t, "init", "-o", docPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCLI(t, "init", "document", "-o", docPath, "--force")
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "render", docPath, "--verify")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Project name\n============\n"))
}

func TestIntegration_InitConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".gomdbuild.yml")

	_, _, err := runCLI(t, "init", "config", "--full", "-o", cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "log_level: info")

	jsonPath := filepath.Join(dir, "gomdbuild.json")
	_, _, err = runCLI(t, "init", "config", "--format", "json", "-o", jsonPath)
	require.NoError(t, err)

	var values map[string]any
	content, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, &values))
	assert.Equal(t, "gfm", values["flavor"])

	_, _, err = runCLI(t, "init", "readme")
	require.Error(t, err)
}
