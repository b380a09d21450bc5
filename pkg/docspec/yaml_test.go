package docspec_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/pkg/docspec"
	"github.com/yaklabco/gomdbuild/pkg/fsutil"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		doc, err := docspec.Parse([]byte("title: T\nblocks:\n  - type: p\n    text: x\n"))
		require.NoError(t, err)
		assert.Equal(t, "T", doc.Title)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "x", doc.Blocks[0].Text)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		doc, err := docspec.Parse([]byte(`{"blocks": [{"type": "bullets", "items": ["a", "b"]}]}`))
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, []string{"a", "b"}, doc.Blocks[0].Items)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		doc, err := docspec.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, doc.Blocks)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		_, err := docspec.Parse([]byte("blocks:\n  - type: p\n    txt: typo\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "txt")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := docspec.Parse([]byte("blocks: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "document.yml")
		require.NoError(t, os.WriteFile(path, []byte("blocks:\n  - {type: rule}\n"), 0644))

		doc, err := docspec.Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, doc.Blocks, 1)
		assert.Equal(t, "rule", doc.Blocks[0].Type)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := docspec.Load(context.Background(), filepath.Join(t.TempDir(), "none.yml"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("parse error names the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("blocks: {"), 0644))

		_, err := docspec.Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestDocument_ToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	sample := docspec.Sample()
	data, err := sample.ToYAML()
	require.NoError(t, err)

	parsed, err := docspec.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, sample, parsed)

	ctx := context.Background()
	want, err := docspec.Render(ctx, sample, docspec.Options{})
	require.NoError(t, err)
	got, err := docspec.Render(ctx, parsed, docspec.Options{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDocument_ToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	doc := &docspec.Document{Blocks: []docspec.Block{{Type: "rule"}}}

	data, err := doc.ToYAMLWithHeader("# generated")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# generated\n\n"))

	parsed, err := docspec.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)

	var nilDoc *docspec.Document
	data, err = nilDoc.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}
