package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystemWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	fsys := NewOSFileSystem()

	if err := fsys.WriteFile(path, []byte("first run, longer content"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := fsys.WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestOSFileSystemWriteFileMissingDir(t *testing.T) {
	fsys := NewOSFileSystem()
	err := fsys.WriteFile(filepath.Join(t.TempDir(), "nope", "index.html"), []byte("x"), 0644)
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestOSFileSystemFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	if !fsys.FileExists(path) {
		t.Error("expected file to exist")
	}
	if fsys.FileExists(filepath.Join(dir, "b.html")) {
		t.Error("expected missing file to not exist")
	}
}
