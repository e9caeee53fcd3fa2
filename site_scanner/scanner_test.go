package site_scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func relativePaths(t *testing.T, rootDir string) []string {
	t.Helper()
	scanner := NewSiteScanner()
	result, err := scanner.ScanHTMLFiles(rootDir)
	require.NoError(t, err)

	var paths []string
	for _, page := range result.Pages {
		paths = append(paths, page.RelativePath)
	}
	return paths
}

// Only HTML files survive the suffix filter, at any nesting depth
func TestScanner_FindsHTMLFiles(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, filepath.Join(tempDir, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(tempDir, "about.HTM"), "<html></html>")
	writeFile(t, filepath.Join(tempDir, "style.css"), "body {}")
	writeFile(t, filepath.Join(tempDir, "docs", "guide.html"), "<html></html>")

	paths := relativePaths(t, tempDir)

	assert.ElementsMatch(t, []string{"index.html", "about.HTM", "docs/guide.html"}, paths)
}

// Depth counts directories below the root, not path segments
func TestScanner_ComputesDepth(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, filepath.Join(tempDir, "index.html"), "x")
	writeFile(t, filepath.Join(tempDir, "a", "one.html"), "x")
	writeFile(t, filepath.Join(tempDir, "a", "b", "two.html"), "x")

	scanner := NewSiteScanner()
	result, err := scanner.ScanHTMLFiles(tempDir)
	require.NoError(t, err)

	depths := make(map[string]int)
	for _, page := range result.Pages {
		depths[page.RelativePath] = page.Depth
	}

	assert.Equal(t, 0, depths["index.html"])
	assert.Equal(t, 1, depths["a/one.html"])
	assert.Equal(t, 2, depths["a/b/two.html"])
}

// Hidden entries, node_modules, backup-named directories, and the mirroring
// tool's cache directory are excluded regardless of nesting depth
func TestScanner_ExclusionFilter(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, filepath.Join(tempDir, "keep.html"), "x")
	writeFile(t, filepath.Join(tempDir, ".hidden", "skip.html"), "x")
	writeFile(t, filepath.Join(tempDir, "node_modules", "skip.html"), "x")
	writeFile(t, filepath.Join(tempDir, "hts-cache", "new.html"), "x")
	writeFile(t, filepath.Join(tempDir, "old-backup", "skip.html"), "x")
	writeFile(t, filepath.Join(tempDir, "deep", "site-backup-2020", "skip.html"), "x")
	writeFile(t, filepath.Join(tempDir, "index-backup.html"), "x")

	paths := relativePaths(t, tempDir)

	assert.ElementsMatch(t, []string{"keep.html"}, paths)
}

// Patterns from .mirrortidyignore exclude matching files
func TestScanner_IgnoreFile(t *testing.T) {
	tempDir := t.TempDir()

	writeFile(t, filepath.Join(tempDir, ".mirrortidyignore"), "# comment\ndrafts/\n*.draft.html\n")
	writeFile(t, filepath.Join(tempDir, "keep.html"), "x")
	writeFile(t, filepath.Join(tempDir, "page.draft.html"), "x")
	writeFile(t, filepath.Join(tempDir, "drafts", "wip.html"), "x")

	paths := relativePaths(t, tempDir)

	assert.ElementsMatch(t, []string{"keep.html"}, paths)
}

// A symlink pointing back at an ancestor terminates without recursing forever
// and without duplicating files from the cyclic path
func TestScanner_CycleSafety(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevation on windows")
	}

	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "sub", "page.html"), "x")
	require.NoError(t, os.Symlink(tempDir, filepath.Join(tempDir, "sub", "loop")))

	scanner := NewSiteScanner()
	result, err := scanner.ScanHTMLFiles(tempDir)
	require.NoError(t, err)

	var paths []string
	for _, page := range result.Pages {
		paths = append(paths, page.RelativePath)
	}
	assert.ElementsMatch(t, []string{"sub/page.html"}, paths)
	assert.NotEmpty(t, result.SkippedDirs)
}

// A missing root is a setup failure, not a contained one
func TestScanner_MissingRoot(t *testing.T) {
	scanner := NewSiteScanner()
	_, err := scanner.ScanHTMLFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
