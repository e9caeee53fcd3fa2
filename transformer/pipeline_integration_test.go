package transformer

import (
	"os"
	"path/filepath"
	"testing"

	"mirrortidy/restructurer"
	"mirrortidy/site_scanner"
	"mirrortidy/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full tool A flow over a realistic mirror layout: flatten, scan, rewrite,
// and verify a second pass is a no-op.
func TestFixPathsPipeline(t *testing.T) {
	tempDir := t.TempDir()
	mirror := filepath.Join(tempDir, "www.example.com")

	write := func(path string, content string) {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	write(filepath.Join(tempDir, "index.html"),
		`<html><body>Index of locally mirrored sites - HTTrack Website Copier<a href="www.example.com/index.html">site</a></body></html>`)
	write(filepath.Join(mirror, "index.html"),
		`<html><body><a href="../www.example.com/docs/guide.html">guide</a><img src="../logo.png"></body></html>`)
	write(filepath.Join(mirror, "docs", "guide.html"),
		`<html><body><a href="../index.html">home</a></body></html>`)
	write(filepath.Join(mirror, "logo.png"), "png")

	// Phase 1: flatten
	r := restructurer.NewRestructurer("")
	result, err := r.FlattenMirrorRoot(tempDir)
	require.NoError(t, err)
	assert.True(t, result.MirrorDirRemoved)
	assert.Equal(t, restructurer.ToolBackupName, result.BackupFile)

	// Phase 2: scan and rewrite
	runPass := func() int {
		scan, err := site_scanner.NewSiteScanner().ScanHTMLFiles(tempDir)
		require.NoError(t, err)

		rewriter := NewPathRewriter(result.MirrorDir)
		changedCount := 0
		for _, page := range scan.Pages {
			original, err := os.ReadFile(page.AbsolutePath)
			require.NoError(t, err)

			updated := rewriter.Transform(page, string(original))
			changed, err := utils.WriteFileIfChanged(page.AbsolutePath, original, []byte(updated))
			require.NoError(t, err)
			if changed {
				changedCount++
			}
		}
		return changedCount
	}

	firstPass := runPass()
	assert.Greater(t, firstPass, 0)

	index, err := os.ReadFile(filepath.Join(tempDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="./docs/guide.html"`)
	assert.Contains(t, string(index), `src="./logo.png"`)

	guide, err := os.ReadFile(filepath.Join(tempDir, "docs", "guide.html"))
	require.NoError(t, err)
	assert.Contains(t, string(guide), `href="../index.html"`)

	// Second run on the fixed tree changes nothing
	assert.Equal(t, 0, runPass())
}
