package site_scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mirrortidy/constants/lipgloss"
	"mirrortidy/site_scanner/contracts"
	"mirrortidy/site_scanner/models"
	"mirrortidy/utils"
)

// SiteScanner enumerates the HTML pages of a mirrored site.
type SiteScanner struct {
	// visited holds the canonical form of every directory already walked,
	// so a symlink pointing back at an ancestor cannot recurse forever.
	visited map[string]bool
}

// NewSiteScanner initializes a new SiteScanner.
func NewSiteScanner() contracts.ISiteScanner {
	return &SiteScanner{
		visited: make(map[string]bool),
	}
}

func (scanner *SiteScanner) ScanHTMLFiles(rootDir string) (*models.ScanResult, error) {
	rootInfo, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("site root is not accessible: %s, error: %w", rootDir, err)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf("site root is not a directory: %s", rootDir)
	}

	// Retrieve user-supplied ignore patterns, if a .mirrortidyignore exists
	ignorePatterns, err := utils.GetIgnorePatterns(rootDir)
	if err != nil {
		return nil, err
	}

	scanner.visited = make(map[string]bool)
	result := &models.ScanResult{}
	scanner.walk(rootDir, rootDir, ignorePatterns, result)

	return result, nil
}

// walk recurses into dir, appending matching pages onto result.
func (scanner *SiteScanner) walk(rootDir string, dir string, ignorePatterns []string, result *models.ScanResult) {
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		// Broken symlink or a permissions race; skip the subtree
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipping unresolvable directory %s: %v", dir, err)))
		result.SkippedDirs = append(result.SkippedDirs, dir)
		return
	}
	if abs, err := filepath.Abs(canonical); err == nil {
		canonical = abs
	}

	if scanner.visited[canonical] {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Cycle detected at %s, skipping", dir)))
		result.SkippedDirs = append(result.SkippedDirs, dir)
		return
	}
	scanner.visited[canonical] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipping unreadable directory %s: %v", dir, err)))
		result.SkippedDirs = append(result.SkippedDirs, dir)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		relativePath, err := filepath.Rel(rootDir, path)
		if err != nil {
			relativePath = name
		}
		relativePath = strings.ReplaceAll(relativePath, "\\", "/")

		// Check if the current directory or file should be skipped based on default exclusion patterns
		if utils.IsDefaultExcluded(relativePath) {
			continue
		}

		if utils.IsIgnored(relativePath, ignorePatterns) {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			// Follow directory symlinks; the visited set keeps this safe
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				isDir = true
			}
		}

		if isDir {
			scanner.walk(rootDir, path, ignorePatterns, result)
			continue
		}

		if !isHTMLFile(name) {
			continue
		}

		result.Pages = append(result.Pages, models.PageFile{
			AbsolutePath: path,
			RelativePath: relativePath,
			Depth:        pageDepth(relativePath),
		})
	}
}

// isHTMLFile reports whether name carries an HTML suffix. HTTrack mirrors
// contain both .html and .htm pages.
func isHTMLFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}

// pageDepth counts the directories between the site root and the page.
func pageDepth(relativePath string) int {
	return len(strings.Split(relativePath, "/")) - 1
}
