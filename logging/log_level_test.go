package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLogLevelString(t *testing.T) {
	tests := []struct {
		name         string
		levelStr     string
		defaultLevel zapcore.Level
		expected     zapcore.Level
	}{
		{"debug lowercase", "debug", zapcore.InfoLevel, zapcore.DebugLevel},
		{"info uppercase", "INFO", zapcore.DebugLevel, zapcore.InfoLevel},
		{"warn mixed case", "Warn", zapcore.InfoLevel, zapcore.WarnLevel},
		{"warning alternative", "warning", zapcore.InfoLevel, zapcore.WarnLevel},
		{"error", "error", zapcore.InfoLevel, zapcore.ErrorLevel},
		{"fatal", "FATAL", zapcore.InfoLevel, zapcore.FatalLevel},
		{"surrounding whitespace", "  debug ", zapcore.InfoLevel, zapcore.DebugLevel},
		{"invalid returns default", "loud", zapcore.WarnLevel, zapcore.WarnLevel},
		{"empty returns default", "", zapcore.ErrorLevel, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLogLevelString(tt.levelStr, tt.defaultLevel)
			if got != tt.expected {
				t.Errorf("ParseLogLevelString(%q) = %v, want %v", tt.levelStr, got, tt.expected)
			}
		})
	}
}

func TestParseLogLevel_Env(t *testing.T) {
	t.Run("unset uses default", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "")
		if got := ParseLogLevel(LevelEnvVar, InfoLevel); got != InfoLevel {
			t.Errorf("ParseLogLevel() = %v, want %v", got, InfoLevel)
		}
	})

	t.Run("set value is parsed", func(t *testing.T) {
		t.Setenv(LevelEnvVar, "debug")
		if got := ParseLogLevel(LevelEnvVar, InfoLevel); got != DebugLevel {
			t.Errorf("ParseLogLevel() = %v, want %v", got, DebugLevel)
		}
	})
}

func TestIsValidLevel(t *testing.T) {
	for _, s := range []string{"debug", "INFO", "warn", "warning", "error", "fatal"} {
		if !IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "trace", "verbose"} {
		if IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = true, want false", s)
		}
	}
}
