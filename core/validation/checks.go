package validation

import (
	"errors"
	"fmt"
	"os"
)

// FileExistsError describes a missing or unusable file path.
type FileExistsError struct {
	Path    string
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// CheckFileExists returns nil if path names an existing regular file.
func CheckFileExists(path string) error {
	if path == "" {
		return &FileExistsError{Path: path, Message: "file path cannot be empty"}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &FileExistsError{Path: path, Message: fmt.Sprintf("file not found: %s", path)}
		}
		return &FileExistsError{Path: path, Message: fmt.Sprintf("error checking file %s: %v", path, err)}
	}
	if info.IsDir() {
		return &FileExistsError{Path: path, Message: fmt.Sprintf("path is a directory, not a file: %s", path)}
	}
	return nil
}

// CheckEnvFile reports whether the optional .env file at path is present.
// Its absence is only a warning.
func CheckEnvFile(path string) Outcome {
	if err := CheckFileExists(path); err != nil {
		return Warning(fmt.Sprintf("%s not found, using process environment", path))
	}
	return Passed(path)
}

// CheckWritableDir creates dir if needed and proves it accepts new files.
func CheckWritableDir(dir string) Outcome {
	if dir == "" {
		return Failed(errors.New("directory path is empty"))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Failed(fmt.Errorf("cannot create %s: %w", dir, err))
	}

	probe, err := os.CreateTemp(dir, ".ebu-check-*")
	if err != nil {
		return Failed(fmt.Errorf("cannot write to %s: %w", dir, err))
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return Passed(dir)
}
