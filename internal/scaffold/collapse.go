package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Collapse resolves the real template root inside an extraction directory.
// Many archive tools wrap all content in a single top-level folder named
// after the release or tag; if extractedDir contains exactly one entry and
// that entry is a directory, the entry is the template root. In every other
// case (empty directory, a single file, multiple entries) extractedDir is
// returned unchanged.
func Collapse(extractedDir string) (string, error) {
	entries, err := os.ReadDir(extractedDir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", extractedDir, err)
	}

	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(extractedDir, entries[0].Name()), nil
	}
	return extractedDir, nil
}
