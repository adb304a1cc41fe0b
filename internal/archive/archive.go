// Package archive unpacks starter template archives. The format is
// chosen by file extension; zip and tar (plain or gzip-compressed) are
// supported. Entries that would escape the extraction directory are
// rejected.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by ForFile for archives it cannot unpack.
var ErrUnsupportedFormat = errors.New("unsupported archive format")

// Extractor unpacks one archive into a target directory.
type Extractor interface {
	ExtractTo(destDir string) error
}

// ForFile returns an extractor for the archive at path, chosen by file
// extension: .zip, .tar, .tar.gz, and .tgz are recognized.
func ForFile(path string) (Extractor, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".zip"):
		return &zipExtractor{path: path}, nil
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return &tarExtractor{path: path, gzipped: true}, nil
	case strings.HasSuffix(name, ".tar"):
		return &tarExtractor{path: path}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// entryPath maps an archive entry name to a path under destDir, refusing
// names that resolve outside the extraction directory.
func entryPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if target != filepath.Clean(destDir) &&
		!strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes extraction directory", name)
	}
	return target, nil
}
