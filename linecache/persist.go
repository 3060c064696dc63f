package linecache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	backupSuffix = ".bk"
	lockSuffix   = ".lock"
)

// Path joins a store directory and file name.
func Path(dir, name string) string {
	return filepath.Join(dir, name)
}

// BackupPath returns the single-generation backup path for path.
func BackupPath(path string) string {
	return path + backupSuffix
}

// loadLines reads the persisted set at path. A missing file is an empty set.
// Lines are cleaned the same way as candidates, so hand-edited files with
// blanks, CRLF endings or repeats load as a proper set.
func loadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lines := CleanLines(string(data))
	if lines == nil {
		return []string{}, nil
	}
	return lines, nil
}

// backupFile copies path to its backup. It reports false when there was
// nothing to back up.
func backupFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read for backup: %w", err)
	}
	if err := writeFileAtomic(BackupPath(path), data); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// writeLines stores lines at path, one per LF-terminated row.
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return writeFileAtomic(path, []byte(b.String()))
}

// writeFileAtomic writes data to a temporary file next to path, syncs it and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}
