package validation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(file, []byte("buckets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing file", file, false},
		{"empty path", "", true},
		{"missing", filepath.Join(dir, "nope"), true},
		{"directory", dir, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFileExists(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileExists(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			var fe *FileExistsError
			if err != nil && !errors.As(err, &fe) {
				t.Errorf("error type = %T, want *FileExistsError", err)
			}
		})
	}
}

func TestCheckEnvFile(t *testing.T) {
	if got := CheckEnvFile(filepath.Join(t.TempDir(), ".env")); got.Status != StepWarning {
		t.Errorf("missing .env status = %v, want warning", got.Status)
	}
}

func TestCheckWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if got := CheckWritableDir(dir); got.Status != StepPassed {
		t.Fatalf("status = %v, err = %v", got.Status, got.Err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}

	if got := CheckWritableDir(""); got.Status != StepFailed {
		t.Errorf("empty dir status = %v", got.Status)
	}
}

func TestGetDiskSpace(t *testing.T) {
	info, err := GetDiskSpace(filepath.Join(t.TempDir(), "not", "yet", "created"))
	if err != nil {
		t.Fatalf("GetDiskSpace() error = %v", err)
	}
	if info.Total <= 0 || info.Free < 0 {
		t.Errorf("info = %+v", info)
	}

	var dse *DiskSpaceError
	if err := CheckDiskSpace(t.TempDir(), 1<<62); !errors.As(err, &dse) {
		t.Errorf("CheckDiskSpace(huge) = %v, want *DiskSpaceError", err)
	}
	if err := CheckDiskSpace(t.TempDir(), 0); err != nil {
		t.Errorf("CheckDiskSpace(0) = %v", err)
	}
}
