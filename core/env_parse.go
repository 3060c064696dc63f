package core

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvOrDefault returns the value of key, or defaultValue when unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// LookupIntEnv parses key as an integer. ok is false when the variable is
// unset; err is non-nil when it is set but not an integer.
func LookupIntEnv(key string) (value int, ok bool, err error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, true, ErrInvalidValue(key, raw, "expected an integer")
	}
	return value, true, nil
}

// ParseIntEnv returns key as an integer, or defaultValue when unset.
// A malformed value is reported as a *ConfigError.
func ParseIntEnv(key string, defaultValue int) (int, error) {
	value, ok, err := LookupIntEnv(key)
	if err != nil {
		return defaultValue, err
	}
	if !ok {
		return defaultValue, nil
	}
	return value, nil
}

// ParseFloat64Env returns key as a float64, or defaultValue when unset.
func ParseFloat64Env(key string, defaultValue float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue, ErrInvalidValue(key, raw, "expected a number")
	}
	return value, nil
}

// ParseBoolEnv accepts true/1/yes/on and false/0/no/off, case-insensitively.
func ParseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return defaultValue, ErrInvalidValue(key, raw, "expected true or false")
	}
}

// ParseDurationEnv reads key as a whole number of seconds.
func ParseDurationEnv(key string, defaultSeconds int) (time.Duration, error) {
	seconds, err := ParseIntEnv(key, defaultSeconds)
	return time.Duration(seconds) * time.Second, err
}
