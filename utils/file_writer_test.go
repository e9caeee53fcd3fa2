package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unchanged content must not touch the file on disk
func TestWriteFileIfChanged_NoChange(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "page.html")
	content := []byte("<html></html>")
	require.NoError(t, os.WriteFile(path, content, 0644))

	before, err := os.Stat(path)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	changed, err := WriteFileIfChanged(path, content, []byte("<html></html>"))
	require.NoError(t, err)
	assert.False(t, changed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestWriteFileIfChanged_Change(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	changed, err := WriteFileIfChanged(path, []byte("old"), []byte("new"))
	require.NoError(t, err)
	assert.True(t, changed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}
