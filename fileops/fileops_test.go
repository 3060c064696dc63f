package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAppendAndOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := Write(dir, "notes.txt", "first", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Write(dir, "notes.txt", "second", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(dir, "notes.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "first\nsecond\n" {
		t.Errorf("after append = %q", got)
	}

	if err := Write(dir, "notes.txt", "only", true); err != nil {
		t.Fatalf("Write overwrite: %v", err)
	}
	if got, _ := Read(dir, "notes.txt"); got != "only\n" {
		t.Errorf("after overwrite = %q", got)
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(t.TempDir(), "nope.txt")
	if err != nil || got != "" {
		t.Errorf("Read = %q, %v; want empty, nil", got, err)
	}
}

func TestReadDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(dir, "sub"); err == nil {
		t.Error("expected an error reading a directory")
	}
}

func TestMissingName(t *testing.T) {
	if err := Write(t.TempDir(), "", "x", false); !errors.Is(err, ErrMissingName) {
		t.Errorf("Write err = %v", err)
	}
	if _, err := Read(t.TempDir(), ""); !errors.Is(err, ErrMissingName) {
		t.Errorf("Read err = %v", err)
	}
}
