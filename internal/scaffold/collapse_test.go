package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollapse_SingleDirectory(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "starterkit-1.2.0")
	if err := os.Mkdir(inner, 0o755); err != nil {
		t.Fatalf("creating wrapper directory: %v", err)
	}

	got, err := Collapse(dir)
	if err != nil {
		t.Fatalf("Collapse(%q): %v", dir, err)
	}
	if got != inner {
		t.Errorf("Collapse(%q) = %q, want %q", dir, got, inner)
	}
}

func TestCollapse_MultipleEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "templates"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "template.yml"), []byte("tokens:\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	got, err := Collapse(dir)
	if err != nil {
		t.Fatalf("Collapse(%q): %v", dir, err)
	}
	if got != dir {
		t.Errorf("Collapse(%q) = %q, want the input unchanged", dir, got)
	}
}

func TestCollapse_SingleFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	got, err := Collapse(dir)
	if err != nil {
		t.Fatalf("Collapse(%q): %v", dir, err)
	}
	if got != dir {
		t.Errorf("Collapse(%q) = %q, want the input unchanged", dir, got)
	}
}

func TestCollapse_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	got, err := Collapse(dir)
	if err != nil {
		t.Fatalf("Collapse(%q): %v", dir, err)
	}
	if got != dir {
		t.Errorf("Collapse(%q) = %q, want the input unchanged", dir, got)
	}
}

func TestCollapse_MissingDirectory(t *testing.T) {
	if _, err := Collapse(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}
