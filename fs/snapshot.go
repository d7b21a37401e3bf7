// Package fs provides file-based storage for page snapshots.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SnapshotPath converts a storefront URL to a relative markdown path.
// The host is kept as the top-level directory so snapshots from different
// platforms never collide.
// Example: https://store.example.com/app/367520 → store.example.com/app/367520.md
func SnapshotPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash → index.md
	if path == "" || path == "/" {
		return filepath.Join(u.Host, "index.md"), nil
	}

	path = strings.TrimPrefix(path, "/")
	if strings.HasSuffix(path, "/") {
		return filepath.Join(u.Host, path, "index.md"), nil
	}

	return filepath.Join(u.Host, path+".md"), nil
}

// formatSnapshot wraps content with YAML frontmatter recording where and
// when it was fetched.
func formatSnapshot(sourceURL, content string, fetchedAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	b.WriteString("\nfetched: ")
	b.WriteString(fetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	return b.String()
}

// Writer writes page snapshots as markdown files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteSnapshot saves the content for sourceURL and returns the path of
// the written file.
func (w *Writer) WriteSnapshot(sourceURL, content string, fetchedAt time.Time) (string, error) {
	relPath, err := SnapshotPath(sourceURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	formatted := formatSnapshot(sourceURL, content, fetchedAt)
	if err := os.WriteFile(fullPath, []byte(formatted), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
