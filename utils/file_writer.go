package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/zeebo/xxh3"
)

// WriteFileIfChanged writes updated back to path only when its content
// differs from original. The xxh3 comparison is the fast path; equal hashes
// are confirmed byte-for-byte before the write is skipped.
func WriteFileIfChanged(path string, original []byte, updated []byte) (bool, error) {
	if xxh3.Hash(original) == xxh3.Hash(updated) && bytes.Equal(original, updated) {
		return false, nil
	}

	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, updated, mode); err != nil {
		return false, fmt.Errorf("failed to write file: %s, error: %w", path, err)
	}

	return true, nil
}
