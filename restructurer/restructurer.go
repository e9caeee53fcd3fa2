package restructurer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mirrortidy/constants/lipgloss"
	"mirrortidy/restructurer/contracts"
	"mirrortidy/restructurer/models"
)

// ErrMirrorDirNotFound indicates rootDir holds no nested domain directory.
// The caller decides whether to continue with the transform phase.
var ErrMirrorDirNotFound = errors.New("mirror subdirectory not found")

const (
	// ToolBackupName is where the outer index goes when it is recognized as
	// the mirroring tool's navigation page.
	ToolBackupName = "index-httrack-backup.html"

	// OriginalBackupName is the conservative fallback name for a displaced
	// index that carried no recognizable marker.
	OriginalBackupName = "index-original-backup.html"
)

// toolMarkers are the case-insensitive substrings characteristic of the
// mirroring tool's generated navigation page.
var toolMarkers = []string{"httrack", "mirror", "hts-log"}

// Restructurer flattens the duplicated domain directory an offline mirroring
// tool leaves one level below the intended site root.
type Restructurer struct {
	// MirrorDir is the configured subdirectory name; empty means auto-detect.
	MirrorDir string
}

// NewRestructurer initializes a new Restructurer.
func NewRestructurer(mirrorDir string) contracts.IRestructurer {
	return &Restructurer{
		MirrorDir: mirrorDir,
	}
}

func (r *Restructurer) ResolveMirrorDir(rootDir string) (string, error) {
	if r.MirrorDir != "" {
		info, err := os.Stat(filepath.Join(rootDir, r.MirrorDir))
		if err != nil || !info.IsDir() {
			return "", ErrMirrorDirNotFound
		}
		return r.MirrorDir, nil
	}

	// Auto-detect: a single domain-named child directory carrying its own
	// index.html is the mirroring tool's nesting artifact.
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return "", fmt.Errorf("failed to read site root: %s, error: %w", rootDir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !looksLikeDomainDir(name) {
			continue
		}
		if _, err := os.Stat(filepath.Join(rootDir, name, "index.html")); err == nil {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) != 1 {
		return "", ErrMirrorDirNotFound
	}
	return candidates[0], nil
}

// looksLikeDomainDir reports whether name resembles a mirrored hostname.
func looksLikeDomainDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.Contains(name, ".")
}

func (r *Restructurer) ClassifyIndex(outerContent string, innerContent string) models.IndexClass {
	if containsToolMarker(outerContent) {
		return models.IndexToolGenerated
	}
	if containsToolMarker(innerContent) {
		return models.IndexRealHomepage
	}
	return models.IndexUndetermined
}

func containsToolMarker(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range toolMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func (r *Restructurer) FlattenMirrorRoot(rootDir string) (*models.FlattenResult, error) {
	mirrorName, err := r.ResolveMirrorDir(rootDir)
	if err != nil {
		return nil, err
	}

	mirrorPath := filepath.Join(rootDir, mirrorName)
	result := &models.FlattenResult{MirrorDir: mirrorName}

	if err := r.resolveIndexConflict(rootDir, mirrorPath, result); err != nil {
		return nil, err
	}

	// Migrate everything else up to the root
	entries, err := os.ReadDir(mirrorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mirror directory: %s, error: %w", mirrorPath, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		src := filepath.Join(mirrorPath, name)
		dst := filepath.Join(rootDir, name)

		if err := moveEntry(src, dst); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Failed to move %s: %v", name, err)))
			result.FailedEntries = append(result.FailedEntries, name)
			continue
		}
		result.MovedEntries++
	}

	// Remove the subdirectory only once it is empty
	remaining, err := os.ReadDir(mirrorPath)
	if err != nil {
		return result, fmt.Errorf("failed to re-read mirror directory: %s, error: %w", mirrorPath, err)
	}
	if len(remaining) == 0 {
		if err := os.Remove(mirrorPath); err != nil {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Could not remove %s: %v", mirrorPath, err)))
		} else {
			result.MirrorDirRemoved = true
		}
	} else {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%s is not empty after migration, leaving it in place", mirrorPath)))
	}

	return result, nil
}

// resolveIndexConflict handles the colliding index.html pair: the winner is
// promoted to the canonical root index, the loser is renamed to a backup
// artifact at the root.
func (r *Restructurer) resolveIndexConflict(rootDir string, mirrorPath string, result *models.FlattenResult) error {
	outerIndex := filepath.Join(rootDir, "index.html")
	innerIndex := filepath.Join(mirrorPath, "index.html")

	_, outerErr := os.Stat(outerIndex)
	_, innerErr := os.Stat(innerIndex)
	if outerErr != nil || innerErr != nil {
		// No conflict; a lone inner index migrates with the other entries
		return nil
	}

	outerContent, err := os.ReadFile(outerIndex)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", outerIndex, err)
	}
	innerContent, err := os.ReadFile(innerIndex)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", innerIndex, err)
	}

	result.IndexConflict = true
	result.IndexClass = r.ClassifyIndex(string(outerContent), string(innerContent))

	switch result.IndexClass {
	case models.IndexToolGenerated:
		result.BackupFile = ToolBackupName
		if err := os.Rename(outerIndex, filepath.Join(rootDir, ToolBackupName)); err != nil {
			return fmt.Errorf("failed to back up outer index: %w", err)
		}
		if err := os.Rename(innerIndex, outerIndex); err != nil {
			return fmt.Errorf("failed to promote inner index: %w", err)
		}

	case models.IndexRealHomepage:
		// The outer index is the real homepage; the nested one is the tool's
		// page and becomes the backup artifact
		result.BackupFile = ToolBackupName
		if err := os.Rename(innerIndex, filepath.Join(rootDir, ToolBackupName)); err != nil {
			return fmt.Errorf("failed to back up inner index: %w", err)
		}

	default:
		// Heuristic fallback: the inner file is statistically more likely to
		// be the real homepage
		result.BackupFile = OriginalBackupName
		result.NeedsManualReview = true
		if err := os.Rename(outerIndex, filepath.Join(rootDir, OriginalBackupName)); err != nil {
			return fmt.Errorf("failed to back up outer index: %w", err)
		}
		if err := os.Rename(innerIndex, outerIndex); err != nil {
			return fmt.Errorf("failed to promote inner index: %w", err)
		}
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Neither index carries a mirroring-tool marker; kept the nested one and saved the outer as %s", OriginalBackupName)))
	}

	return nil
}

// moveEntry moves src to dst. Colliding directories are merged recursively,
// colliding files are replaced by the source.
func moveEntry(src string, dst string) error {
	dstInfo, err := os.Stat(dst)
	if os.IsNotExist(err) {
		return os.Rename(src, dst)
	}
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if srcInfo.IsDir() && dstInfo.IsDir() {
		children, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := moveEntry(filepath.Join(src, child.Name()), filepath.Join(dst, child.Name())); err != nil {
				return err
			}
		}
		return removeEmptyDirectoryIfNeeded(src)
	}

	// File collision on either side: the source wins
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	return os.Rename(src, dst)
}

// removeEmptyDirectoryIfNeeded checks if a directory is empty, and if so, deletes it
func removeEmptyDirectoryIfNeeded(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	if len(entries) == 0 {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("failed to delete empty directory %s: %w", dir, err)
		}
	}
	return nil
}
