package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearConfigEnv blanks every variable LoadConfig reads.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"EBU_DATA_DIR", "EBU_LOG_FILE", "EBU_LOG_LEVEL", "DEV_MODE",
		"EBU_CACHE_MAX_LINES", "EBU_CACHE_SAMPLE", "EBU_LOCK_TIMEOUT",
		"EBU_ASPECT_TOLERANCE", "EBU_PRESETS_FILE", "EBU_HISTORY",
		"EBU_HISTORY_DB", "EBU_HISTORY_RETENTION_DAYS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)
	dataDir := t.TempDir()
	t.Setenv("EBU_DATA_DIR", dataDir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dataDir)
	}
	if cfg.LogFile != filepath.Join(dataDir, "ebu.log") {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.HistoryDB != filepath.Join(dataDir, "history.db") {
		t.Errorf("HistoryDB = %q", cfg.HistoryDB)
	}
	if cfg.CacheMaxLines != DefaultCacheMaxLines {
		t.Errorf("CacheMaxLines = %d, want %d", cfg.CacheMaxLines, DefaultCacheMaxLines)
	}
	if cfg.CacheSample != DefaultCacheSample {
		t.Errorf("CacheSample = %d, want %d", cfg.CacheSample, DefaultCacheSample)
	}
	if cfg.LockTimeout != DefaultLockTimeoutSeconds*time.Second {
		t.Errorf("LockTimeout = %v", cfg.LockTimeout)
	}
	if cfg.AspectTolerance != DefaultAspectTolerance {
		t.Errorf("AspectTolerance = %v, want %v", cfg.AspectTolerance, DefaultAspectTolerance)
	}
	if !cfg.HistoryEnabled {
		t.Error("HistoryEnabled = false, want true")
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.HistoryRetention() != 30*24*time.Hour {
		t.Errorf("HistoryRetention() = %v", cfg.HistoryRetention())
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(presets, []byte("presets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EBU_DATA_DIR", dir)
	t.Setenv("EBU_CACHE_MAX_LINES", "50")
	t.Setenv("EBU_CACHE_SAMPLE", "4")
	t.Setenv("EBU_LOCK_TIMEOUT", "2")
	t.Setenv("EBU_ASPECT_TOLERANCE", "0.05")
	t.Setenv("EBU_PRESETS_FILE", presets)
	t.Setenv("EBU_HISTORY", "off")
	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.CacheMaxLines != 50 || cfg.CacheSample != 4 {
		t.Errorf("cache defaults = %d/%d, want 50/4", cfg.CacheMaxLines, cfg.CacheSample)
	}
	if cfg.LockTimeout != 2*time.Second {
		t.Errorf("LockTimeout = %v, want 2s", cfg.LockTimeout)
	}
	if cfg.AspectTolerance != 0.05 {
		t.Errorf("AspectTolerance = %v, want 0.05", cfg.AspectTolerance)
	}
	if cfg.PresetsFile != presets {
		t.Errorf("PresetsFile = %q, want %q", cfg.PresetsFile, presets)
	}
	if cfg.HistoryEnabled {
		t.Error("HistoryEnabled = true, want false")
	}
	if !cfg.DevMode {
		t.Error("DevMode = false, want true")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		wantCode string
	}{
		{"non-numeric cap", "EBU_CACHE_MAX_LINES", "lots", ErrCodeInvalidValue},
		{"zero cap", "EBU_CACHE_MAX_LINES", "0", ErrCodeOutOfRange},
		{"negative sample", "EBU_CACHE_SAMPLE", "-1", ErrCodeOutOfRange},
		{"zero lock timeout", "EBU_LOCK_TIMEOUT", "0", ErrCodeOutOfRange},
		{"tolerance above one", "EBU_ASPECT_TOLERANCE", "1.5", ErrCodeOutOfRange},
		{"bad bool", "EBU_HISTORY", "sometimes", ErrCodeInvalidValue},
		{"missing presets file", "EBU_PRESETS_FILE", "/nonexistent/presets.yaml", ErrCodePresetsMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("EBU_DATA_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			if err == nil {
				t.Fatal("LoadConfig() expected error, got nil")
			}
			if code := GetErrorCode(err); code != tt.wantCode {
				t.Errorf("error code = %q, want %q (err: %v)", code, tt.wantCode, err)
			}
		})
	}
}
