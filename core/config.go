package core

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds the settings shared by the ebu command and its nodes.
type Config struct {
	// Storage
	DataDir string // base directory for logs and history
	LogFile string // rotated JSON log file

	// Logging
	LogLevel string
	DevMode  bool

	// Line cache defaults, used when a request leaves them at zero
	CacheMaxLines int
	CacheSample   int
	LockTimeout   time.Duration

	// Aspect-ratio classification tolerance
	AspectTolerance float64

	// Optional resolution preset file (.yaml, .yml or .toml)
	PresetsFile string

	// Run history
	HistoryEnabled       bool
	HistoryDB            string
	HistoryRetentionDays int
}

// Defaults for values not set in the environment.
const (
	DefaultCacheMaxLines        = 1000
	DefaultCacheSample          = 1
	DefaultLockTimeoutSeconds   = 10
	DefaultAspectTolerance      = 0.08
	DefaultHistoryRetentionDays = 30
	DefaultLogLevel             = "info"
)

// LoadConfig reads the configuration from environment variables. Callers
// wanting .env support load it with godotenv first.
//
// Every malformed or out-of-range value is returned as a *ConfigError; the
// first one found wins.
func LoadConfig() (*Config, error) {
	dataDir := GetEnvOrDefault("EBU_DATA_DIR", GetDataDirectory())

	cfg := &Config{
		DataDir:     dataDir,
		LogFile:     GetEnvOrDefault("EBU_LOG_FILE", filepath.Join(dataDir, "ebu.log")),
		LogLevel:    GetEnvOrDefault("EBU_LOG_LEVEL", DefaultLogLevel),
		PresetsFile: GetEnvOrDefault("EBU_PRESETS_FILE", ""),
		HistoryDB:   GetEnvOrDefault("EBU_HISTORY_DB", filepath.Join(dataDir, "history.db")),
	}

	var err error
	if cfg.DevMode, err = ParseBoolEnv("DEV_MODE", false); err != nil {
		return nil, err
	}
	if cfg.CacheMaxLines, err = ParseIntEnv("EBU_CACHE_MAX_LINES", DefaultCacheMaxLines); err != nil {
		return nil, err
	}
	if cfg.CacheSample, err = ParseIntEnv("EBU_CACHE_SAMPLE", DefaultCacheSample); err != nil {
		return nil, err
	}
	if cfg.LockTimeout, err = ParseDurationEnv("EBU_LOCK_TIMEOUT", DefaultLockTimeoutSeconds); err != nil {
		return nil, err
	}
	if cfg.AspectTolerance, err = ParseFloat64Env("EBU_ASPECT_TOLERANCE", DefaultAspectTolerance); err != nil {
		return nil, err
	}
	if cfg.HistoryEnabled, err = ParseBoolEnv("EBU_HISTORY", true); err != nil {
		return nil, err
	}
	if cfg.HistoryRetentionDays, err = ParseIntEnv("EBU_HISTORY_RETENTION_DAYS", DefaultHistoryRetentionDays); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that a configured preset file exists.
func (c *Config) Validate() error {
	if c.CacheMaxLines < 1 {
		return ErrOutOfRange("EBU_CACHE_MAX_LINES", c.CacheMaxLines, ">= 1")
	}
	if c.CacheSample < 0 {
		return ErrOutOfRange("EBU_CACHE_SAMPLE", c.CacheSample, ">= 0")
	}
	if c.LockTimeout <= 0 {
		return ErrOutOfRange("EBU_LOCK_TIMEOUT", int(c.LockTimeout/time.Second), "> 0 seconds")
	}
	if c.AspectTolerance < 0 || c.AspectTolerance > 1 {
		return ErrOutOfRange("EBU_ASPECT_TOLERANCE", c.AspectTolerance, "between 0 and 1")
	}
	if c.HistoryRetentionDays < 0 {
		return ErrOutOfRange("EBU_HISTORY_RETENTION_DAYS", c.HistoryRetentionDays, ">= 0")
	}
	if c.PresetsFile != "" {
		if _, err := os.Stat(c.PresetsFile); errors.Is(err, os.ErrNotExist) {
			return ErrPresetsMissing(c.PresetsFile)
		}
	}
	return nil
}

// HistoryRetention returns the retention horizon as a duration; zero keeps
// history forever.
func (c *Config) HistoryRetention() time.Duration {
	return time.Duration(c.HistoryRetentionDays) * 24 * time.Hour
}
