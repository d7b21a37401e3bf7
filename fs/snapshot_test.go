package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/taimg1/game-platform-analyzer/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"detail page", "https://store.example.com/app/367520", filepath.Join("store.example.com", "app", "367520.md")},
		{"root", "https://store.example.com", filepath.Join("store.example.com", "index.md")},
		{"trailing slash", "https://store.example.com/games/", filepath.Join("store.example.com", "games", "index.md")},
		{"query ignored", "https://store.example.com/search?term=indie", filepath.Join("store.example.com", "search.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.SnapshotPath(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriter_WriteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter and content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		fetchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		path, err := w.WriteSnapshot("https://store.example.com/app/1", "# Hollow Knight\n\n$14.99", fetchedAt)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "store.example.com", "app", "1.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://store.example.com/app/1")
		assert.Contains(t, string(content), "fetched: 2025-06-01")
		assert.Contains(t, string(content), "# Hollow Knight")
	})

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		path, err := w.WriteSnapshot("https://store.example.com/a/b/c/d", "content", time.Now())
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("rejects unparseable URLs", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteSnapshot("://not-a-url", "content", time.Now())
		require.Error(t, err)
	})
}
