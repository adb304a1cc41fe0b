// Package theme locates installed themes on disk and reads their info
// manifests. A theme lives in a directory named after its machine name
// and carries a <machineName>.info.yml manifest at its root.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Info is the parsed contents of a theme's info manifest.
type Info struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Base        string `yaml:"base"`
	Version     string `yaml:"version"`
}

// Installed pairs a discovered theme with its location on disk.
type Installed struct {
	MachineName string
	Path        string
	Info        Info
}

// Resolver finds installed themes under a project root by scanning a
// fixed list of search paths.
type Resolver struct {
	Root        string
	SearchPaths []string
}

// NewResolver returns a Resolver scanning the given search paths,
// relative to root.
func NewResolver(root string, searchPaths []string) *Resolver {
	return &Resolver{Root: root, SearchPaths: searchPaths}
}

// Resolve returns the installed path of the theme with the given machine
// name. A directory only counts as a theme when it carries an info
// manifest named after it.
func (r *Resolver) Resolve(id string) (string, error) {
	for _, sp := range r.SearchPaths {
		dir := filepath.Join(r.Root, sp, id)
		if _, err := os.Stat(filepath.Join(dir, id+".info.yml")); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("theme %q not found on search paths", id)
}

// StarterDir returns the default starter template shipped with the given
// base theme: its starterkit/ subdirectory.
func (r *Resolver) StarterDir(id string) (string, error) {
	dir, err := r.Resolve(id)
	if err != nil {
		return "", err
	}

	starter := filepath.Join(dir, "starterkit")
	fi, err := os.Stat(starter)
	if err != nil || !fi.IsDir() {
		return "", fmt.Errorf("theme %q ships no starterkit directory", id)
	}
	return starter, nil
}

// List returns every installed theme found on the search paths, sorted
// by machine name. Directories without a valid info manifest are skipped.
func (r *Resolver) List() ([]Installed, error) {
	seen := make(map[string]bool)
	var themes []Installed

	for _, sp := range r.SearchPaths {
		base := filepath.Join(r.Root, sp)
		entries, err := os.ReadDir(base)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", base, err)
		}

		for _, e := range entries {
			if !e.IsDir() || seen[e.Name()] {
				continue
			}
			infoPath := filepath.Join(base, e.Name(), e.Name()+".info.yml")
			info, err := ReadInfo(infoPath)
			if err != nil {
				continue
			}
			seen[e.Name()] = true
			themes = append(themes, Installed{
				MachineName: e.Name(),
				Path:        filepath.Join(base, e.Name()),
				Info:        *info,
			})
		}
	}

	sort.Slice(themes, func(i, j int) bool {
		return themes[i].MachineName < themes[j].MachineName
	})
	return themes, nil
}

// ReadInfo parses the info manifest at path.
func ReadInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var info Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &info, nil
}
