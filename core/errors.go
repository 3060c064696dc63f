package core

import (
	"errors"
	"fmt"
)

// ConfigError is a configuration problem with an actionable instruction.
type ConfigError struct {
	Code    string // stable code for programmatic handling
	Message string
	Action  string
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Configuration error codes.
const (
	ErrCodeInvalidValue   = "INVALID_VALUE"
	ErrCodeOutOfRange     = "OUT_OF_RANGE"
	ErrCodePresetsMissing = "PRESETS_MISSING"
	ErrCodeDataDir        = "DATA_DIR"
)

// ErrInvalidValue reports an environment variable that could not be parsed.
func ErrInvalidValue(varName, value, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidValue,
		Message: fmt.Sprintf("Invalid value %q for %s: %s", value, varName, reason),
		Action:  fmt.Sprintf("Fix or unset %s in your environment or .env file", varName),
	}
}

// ErrOutOfRange reports a parsed value outside its accepted range.
func ErrOutOfRange(varName string, value interface{}, bounds string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("%s=%v is out of range (%s)", varName, value, bounds),
		Action:  fmt.Sprintf("Set %s to a value %s", varName, bounds),
	}
}

// ErrPresetsMissing reports a configured preset file that does not exist.
func ErrPresetsMissing(path string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodePresetsMissing,
		Message: fmt.Sprintf("Preset file not found: %s", path),
		Action:  "Point EBU_PRESETS_FILE at an existing .yaml or .toml file, or unset it",
	}
}

// ErrDataDir reports a data directory that cannot be created.
func ErrDataDir(path string, err error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeDataDir,
		Message: fmt.Sprintf("Cannot create data directory %s: %v", path, err),
		Action:  "Set EBU_DATA_DIR to a writable directory",
	}
}

// IsConfigError reports whether err wraps a *ConfigError and returns it.
func IsConfigError(err error) (*ConfigError, bool) {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode returns the ConfigError code of err, or "".
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}
