package core

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	const testKey = "EBU_TEST_GET_ENV_OR_DEFAULT"

	tests := []struct {
		name         string
		envValue     string
		defaultValue string
		want         string
	}{
		{"returns env value when set", "custom", "default", "custom"},
		{"returns default when empty", "", "default", "default"},
		{"returns default when blank", "   ", "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(testKey, tt.envValue)
			if got := GetEnvOrDefault(testKey, tt.defaultValue); got != tt.want {
				t.Errorf("GetEnvOrDefault() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseIntEnv(t *testing.T) {
	const testKey = "EBU_TEST_PARSE_INT_ENV"

	tests := []struct {
		name     string
		envValue string
		want     int
		wantErr  bool
	}{
		{"unset uses default", "", 42, false},
		{"valid integer", "7", 7, false},
		{"negative integer", "-3", -3, false},
		{"garbage is an error", "seven", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(testKey, tt.envValue)
			got, err := ParseIntEnv(testKey, 42)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIntEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseIntEnv() = %d, want %d", got, tt.want)
			}
			if err != nil && GetErrorCode(err) != ErrCodeInvalidValue {
				t.Errorf("error code = %q, want %q", GetErrorCode(err), ErrCodeInvalidValue)
			}
		})
	}
}

func TestParseFloat64Env(t *testing.T) {
	const testKey = "EBU_TEST_PARSE_FLOAT_ENV"

	t.Setenv(testKey, "0.125")
	got, err := ParseFloat64Env(testKey, 1)
	if err != nil || got != 0.125 {
		t.Errorf("ParseFloat64Env() = %v, %v; want 0.125, nil", got, err)
	}

	t.Setenv(testKey, "wide")
	if _, err := ParseFloat64Env(testKey, 1); err == nil {
		t.Error("ParseFloat64Env() expected error for non-number")
	}
}

func TestParseBoolEnv(t *testing.T) {
	const testKey = "EBU_TEST_PARSE_BOOL_ENV"

	tests := []struct {
		envValue string
		want     bool
		wantErr  bool
	}{
		{"", true, false},
		{"true", true, false},
		{"YES", true, false},
		{"on", true, false},
		{"1", true, false},
		{"false", false, false},
		{"No", false, false},
		{"off", false, false},
		{"0", false, false},
		{"maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			t.Setenv(testKey, tt.envValue)
			got, err := ParseBoolEnv(testKey, true)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBoolEnv(%q) error = %v, wantErr %v", tt.envValue, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBoolEnv(%q) = %v, want %v", tt.envValue, got, tt.want)
			}
		})
	}
}

func TestParseDurationEnv(t *testing.T) {
	const testKey = "EBU_TEST_PARSE_DURATION_ENV"

	t.Setenv(testKey, "")
	if got, _ := ParseDurationEnv(testKey, 10); got != 10*time.Second {
		t.Errorf("ParseDurationEnv() = %v, want 10s", got)
	}

	t.Setenv(testKey, "3")
	if got, _ := ParseDurationEnv(testKey, 10); got != 3*time.Second {
		t.Errorf("ParseDurationEnv() = %v, want 3s", got)
	}
}
