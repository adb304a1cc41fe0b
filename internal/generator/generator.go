// Package generator rewrites a scaffolded theme in place. After the
// template tree has been mirrored into the destination, every
// placeholder token is replaced by the new theme's display name or
// machine name, and files named after the machine-name token are
// renamed to match the new theme.
package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aellingwood/anvil/internal/logging"
)

// ThemeGenerator performs in-place token substitution on a theme directory.
type ThemeGenerator struct{}

// New returns a ThemeGenerator.
func New() *ThemeGenerator {
	return &ThemeGenerator{}
}

// Generate rewrites the placeholder tokens in every regular file under
// destDir and renames files whose names carry the machine-name token.
// The template manifest, if present, defines the tokens and is removed
// from the destination once generation is done.
func (g *ThemeGenerator) Generate(destDir, machineName, displayName string) error {
	log := logging.GetLogger("generator")

	m, manifestPath, err := loadManifest(destDir)
	if err != nil {
		return err
	}

	var files []string
	err = filepath.WalkDir(destDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path != manifestPath {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", destDir, err)
	}

	for _, path := range files {
		if err := rewriteFile(path, m.Tokens, machineName, displayName); err != nil {
			return err
		}
		if err := renameFile(path, m.Tokens.MachineName, machineName); err != nil {
			return err
		}
	}

	if manifestPath != "" {
		if err := os.Remove(manifestPath); err != nil {
			return fmt.Errorf("removing template manifest: %w", err)
		}
	}

	log.Debug().Int("files", len(files)).Str("dest", destDir).Msg("tokens rewritten")
	return nil
}

// rewriteFile replaces both placeholder tokens in the file's contents.
// The display-name token takes precedence where the two overlap.
func rewriteFile(path string, tokens Tokens, machineName, displayName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if !bytes.Contains(data, []byte(tokens.Name)) && !bytes.Contains(data, []byte(tokens.MachineName)) {
		return nil
	}

	out := strings.NewReplacer(
		tokens.Name, displayName,
		tokens.MachineName, machineName,
	).Replace(string(data))

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("rewriting %s: %w", path, err)
	}
	return nil
}

// renameFile renames path when its base name contains the machine-name
// token, e.g. starterkit.info.yml becomes my_theme.info.yml.
func renameFile(path, machineToken, machineName string) error {
	base := filepath.Base(path)
	renamed := strings.ReplaceAll(base, machineToken, machineName)
	if renamed == base {
		return nil
	}

	target := filepath.Join(filepath.Dir(path), renamed)
	if err := os.Rename(path, target); err != nil {
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
