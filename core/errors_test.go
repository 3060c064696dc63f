package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	withAction := &ConfigError{Code: "X", Message: "Broken", Action: "Fix it"}
	if got := withAction.Error(); got != "Broken. Fix it" {
		t.Errorf("Error() = %q, want %q", got, "Broken. Fix it")
	}

	noAction := &ConfigError{Code: "X", Message: "Broken"}
	if got := noAction.Error(); got != "Broken" {
		t.Errorf("Error() = %q, want %q", got, "Broken")
	}
}

func TestConfigErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		wantCode string
		contains string
	}{
		{"invalid value", ErrInvalidValue("EBU_X", "abc", "expected an integer"), ErrCodeInvalidValue, "EBU_X"},
		{"out of range", ErrOutOfRange("EBU_Y", 0, ">= 1"), ErrCodeOutOfRange, ">= 1"},
		{"presets missing", ErrPresetsMissing("/p.yaml"), ErrCodePresetsMissing, "/p.yaml"},
		{"data dir", ErrDataDir("/d", errors.New("denied")), ErrCodeDataDir, "denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, should contain %q", tt.err.Error(), tt.contains)
			}
			if tt.err.Action == "" {
				t.Error("Action should not be empty")
			}
		})
	}
}

func TestIsConfigError_Wrapped(t *testing.T) {
	base := ErrOutOfRange("EBU_Z", 5, "< 3")
	wrapped := fmt.Errorf("loading: %w", base)

	got, ok := IsConfigError(wrapped)
	if !ok || got != base {
		t.Errorf("IsConfigError(wrapped) = %v, %v; want base, true", got, ok)
	}
	if GetErrorCode(wrapped) != ErrCodeOutOfRange {
		t.Errorf("GetErrorCode(wrapped) = %q", GetErrorCode(wrapped))
	}
	if GetErrorCode(errors.New("plain")) != "" {
		t.Error("GetErrorCode(plain) should be empty")
	}
}
