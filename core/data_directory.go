package core

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is used in the Windows data directory path.
const AppName = "EbuWorkflow"

// unixDirName is the dot-directory used on Linux and macOS.
const unixDirName = ".ebuworkflow"

// GetDataDirectory returns the platform data directory:
//   - Windows: %APPDATA%\EbuWorkflow
//   - others: ~/.ebuworkflow
//
// It does not create the directory; see EnsureDir.
func GetDataDirectory() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return AppName
		}
		return filepath.Join(home, "AppData", "Roaming", AppName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return unixDirName
	}
	return filepath.Join(home, unixDirName)
}

// GetDataFilePath joins filename onto the data directory.
func GetDataFilePath(filename string) string {
	return filepath.Join(GetDataDirectory(), filename)
}

// EnsureDir creates dir with owner-only permissions if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return ErrDataDir(dir, err)
	}
	return nil
}
