package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDefaultExcluded(t *testing.T) {
	assert.True(t, IsDefaultExcluded(".git"))
	assert.True(t, IsDefaultExcluded("docs/.hidden/page.html"))
	assert.True(t, IsDefaultExcluded("node_modules/pkg/index.html"))
	assert.True(t, IsDefaultExcluded("hts-cache/new.html"))
	assert.True(t, IsDefaultExcluded("old-backup/page.html"))
	assert.True(t, IsDefaultExcluded("index-backup.html"))
	assert.True(t, IsDefaultExcluded("a/b/Site-Backup-2020/c.html"))

	assert.False(t, IsDefaultExcluded("index.html"))
	assert.False(t, IsDefaultExcluded("docs/guide/page.html"))
	assert.False(t, IsDefaultExcluded("modules/page.html"))
}

func TestGetIgnorePatterns(t *testing.T) {
	tempDir := t.TempDir()

	// No ignore file yields an empty list
	patterns, err := GetIgnorePatterns(tempDir)
	require.NoError(t, err)
	assert.Empty(t, patterns)

	ignorePath := filepath.Join(tempDir, ".mirrortidyignore")
	require.NoError(t, os.WriteFile(ignorePath, []byte("# drafts\ndrafts/\n*.draft.html\n\n.git\n"), 0644))
	ClearIgnoreCache()

	patterns, err = GetIgnorePatterns(tempDir)
	require.NoError(t, err)
	// Comments, blanks, and patterns the default filter already covers are dropped
	assert.Equal(t, []string{"drafts/", "*.draft.html"}, patterns)
}

func TestIsIgnored(t *testing.T) {
	patterns := []string{"drafts/", "*.draft.html"}

	assert.True(t, IsIgnored("drafts/wip.html", patterns))
	assert.True(t, IsIgnored("page.draft.html", patterns))
	assert.False(t, IsIgnored("index.html", patterns))
}
