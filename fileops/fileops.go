// Package fileops implements the text file nodes: append or overwrite a
// line, and read a whole file.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingName is returned when no file name is given.
var ErrMissingName = errors.New("fileops: file name is required")

// Write stores text followed by a newline in dir/name. With overwrite the
// file is truncated first, otherwise the line is appended. Missing
// directories are created.
func Write(dir, name, text string, overwrite bool) error {
	if name == "" {
		return ErrMissingName
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(text + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Read returns the contents of dir/name, or "" if the file does not exist.
func Read(dir, name string) (string, error) {
	if name == "" {
		return "", ErrMissingName
	}
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
