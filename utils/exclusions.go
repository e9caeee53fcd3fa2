package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ignoreCacheEntry holds cached ignore patterns with metadata
type ignoreCacheEntry struct {
	patterns []string
	modTime  time.Time
}

// Global cache for ignore patterns
var (
	ignoreCache = make(map[string]*ignoreCacheEntry)
	cacheMutex  sync.RWMutex
)

// GetIgnorePatterns reads and returns the patterns from the .mirrortidyignore file.
// If the file does not exist, it returns an empty pattern list.
// This function supports caching for improved performance.
func GetIgnorePatterns(rootDir string) ([]string, error) {
	ignorePath := filepath.Join(rootDir, ".mirrortidyignore")

	// Check if the ignore file exists
	fileInfo, err := os.Stat(ignorePath)
	if os.IsNotExist(err) {
		// .mirrortidyignore doesn't exist, return an empty slice
		return []string{}, nil
	} else if err != nil {
		// Some other error occurred while checking the file
		return nil, fmt.Errorf("error checking .mirrortidyignore: %w", err)
	}

	// Check cache first
	cacheMutex.RLock()
	if cached, exists := ignoreCache[ignorePath]; exists {
		// Check if file has been modified since cache
		if fileInfo.ModTime().Equal(cached.modTime) {
			cacheMutex.RUnlock()
			return cached.patterns, nil
		}
	}
	cacheMutex.RUnlock()

	// Read and parse the ignore file if it exists or cache is invalid
	ignorePatterns, err := readIgnoreFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .mirrortidyignore: %w", err)
	}

	// Drop patterns the default filter already covers
	var validPatterns []string
	for _, pattern := range ignorePatterns {
		if !IsDefaultExcluded(pattern) {
			validPatterns = append(validPatterns, pattern)
		}
	}

	// Update cache
	cacheMutex.Lock()
	ignoreCache[ignorePath] = &ignoreCacheEntry{
		patterns: validPatterns,
		modTime:  fileInfo.ModTime(),
	}
	cacheMutex.Unlock()

	return validPatterns, nil
}

// IsDefaultExcluded reports whether any segment of path matches the built-in
// exclusion filter: hidden entries, the dependency directory, the mirroring
// tool's cache directory, and anything carrying a backup marker in its name.
func IsDefaultExcluded(path string) bool {
	parts := strings.Split(path, "/")

	for _, part := range parts {
		lower := strings.ToLower(part)
		if strings.HasPrefix(lower, ".") {
			return true
		}
		if lower == "node_modules" {
			return true
		}
		if lower == "hts-cache" {
			return true
		}
		if strings.Contains(lower, "backup") {
			return true
		}
	}
	return false
}

// readIgnoreFile reads the .mirrortidyignore file and returns the list of ignore patterns.
func readIgnoreFile(ignorePath string) ([]string, error) {
	content, err := os.ReadFile(ignorePath)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	var patterns []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	return patterns, nil
}

// IsIgnored checks if a file path matches any of the patterns from .mirrortidyignore.
func IsIgnored(path string, patterns []string) bool {
	for _, pattern := range patterns {
		match, _ := filepath.Match(pattern, path)
		if match {
			return true
		}
		// Handle patterns like "dir/" that ignore entire directories
		if strings.HasSuffix(pattern, "/") && strings.HasPrefix(path, pattern) {
			return true
		}
	}
	return false
}

// ClearIgnoreCache clears all cached ignore patterns
func ClearIgnoreCache() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	ignoreCache = make(map[string]*ignoreCacheEntry)
}
