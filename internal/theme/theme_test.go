package theme

import (
	"os"
	"path/filepath"
	"testing"
)

var searchPaths = []string{
	filepath.Join("core", "themes"),
	"themes",
	filepath.Join("themes", "custom"),
}

// installTheme creates a minimal installed theme under root.
func installTheme(t *testing.T, root, searchPath, id, infoYAML string) string {
	t.Helper()
	dir := filepath.Join(root, searchPath, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating theme directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, id+".info.yml"), []byte(infoYAML), 0o644); err != nil {
		t.Fatalf("writing info file: %v", err)
	}
	return dir
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	want := installTheme(t, root, "core/themes", "basekit", "name: Base Kit\ntype: theme\n")

	r := NewResolver(root, searchPaths)
	got, err := r.Resolve("basekit")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Errorf("Resolve(basekit) = %q, want %q", got, want)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver(t.TempDir(), searchPaths)
	if _, err := r.Resolve("missing"); err == nil {
		t.Fatal("expected error for unknown theme, got nil")
	}
}

func TestResolve_IgnoresDirWithoutInfoFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "themes", "notatheme"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	r := NewResolver(root, searchPaths)
	if _, err := r.Resolve("notatheme"); err == nil {
		t.Fatal("directory without info manifest should not resolve")
	}
}

func TestStarterDir(t *testing.T) {
	root := t.TempDir()
	dir := installTheme(t, root, "themes", "basekit", "name: Base Kit\n")
	starter := filepath.Join(dir, "starterkit")
	if err := os.MkdirAll(starter, 0o755); err != nil {
		t.Fatalf("creating starterkit: %v", err)
	}

	r := NewResolver(root, searchPaths)
	got, err := r.StarterDir("basekit")
	if err != nil {
		t.Fatalf("StarterDir: %v", err)
	}
	if got != starter {
		t.Errorf("StarterDir(basekit) = %q, want %q", got, starter)
	}
}

func TestStarterDir_Missing(t *testing.T) {
	root := t.TempDir()
	installTheme(t, root, "themes", "basekit", "name: Base Kit\n")

	r := NewResolver(root, searchPaths)
	if _, err := r.StarterDir("basekit"); err == nil {
		t.Fatal("expected error when the theme ships no starterkit, got nil")
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()
	installTheme(t, root, "core/themes", "basekit", "name: Base Kit\ntype: theme\n")
	installTheme(t, root, "themes/custom", "my_theme", "name: My Theme\nbase: basekit\n")
	// Not a theme: no info manifest.
	if err := os.MkdirAll(filepath.Join(root, "themes", "junk"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	r := NewResolver(root, searchPaths)
	themes, err := r.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(themes) != 2 {
		t.Fatalf("List returned %d themes, want 2", len(themes))
	}
	if themes[0].MachineName != "basekit" || themes[1].MachineName != "my_theme" {
		t.Errorf("List order = [%s, %s], want sorted by machine name",
			themes[0].MachineName, themes[1].MachineName)
	}
	if themes[1].Info.Base != "basekit" {
		t.Errorf("my_theme base = %q, want basekit", themes[1].Info.Base)
	}
}

func TestReadInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.info.yml")
	content := "name: Ocean\ndescription: A calm blue theme\ntype: theme\nversion: 1.0.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing info file: %v", err)
	}

	info, err := ReadInfo(path)
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	if info.Name != "Ocean" || info.Version != "1.0.0" {
		t.Errorf("ReadInfo = %+v, want name Ocean and version 1.0.0", info)
	}
}
