package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.yml")
		require.NoError(t, os.WriteFile(path, []byte("blocks: []\n"), 0644))

		got, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "blocks: []\n", string(got))
	})

	t.Run("missing file is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yml"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory is ErrIsDirectory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "anypath")
		require.ErrorIs(t, err, context.Canceled)
	})
}
