package validation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStepStatus_String(t *testing.T) {
	tests := []struct {
		status   StepStatus
		expected string
	}{
		{StepPassed, "passed"},
		{StepFailed, "failed"},
		{StepWarning, "warning"},
		{StepSkipped, "skipped"},
		{StepStatus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("StepStatus(%d).String() = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestSuite_Run(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	result := NewSuite("Test Checks").
		WithOutput(&buf).
		Add("first", func() Outcome { return Passed("fine") }).
		Add("second", func() Outcome { return Warning("meh") }).
		Add("third", func() Outcome { return Failed(boom) }).
		Add("fourth", func() Outcome { return Skipped("n/a") }).
		Run()

	if result.Success {
		t.Error("Success = true with a failed step")
	}
	if result.TotalSteps != 4 || result.PassedSteps != 1 || result.FailedSteps != 1 || result.Warnings != 1 {
		t.Errorf("counts = %+v", result)
	}
	if !errors.Is(result.FirstError(), boom) {
		t.Errorf("FirstError() = %v", result.FirstError())
	}

	out := buf.String()
	for _, want := range []string{"Test Checks", "first", "fine", "boom", "Checks Failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSuite_FailFast(t *testing.T) {
	ran := false
	result := NewSuite("x").
		WithShowProgress(false).
		WithFailFast(true).
		Add("fails", func() Outcome { return Outcome{Status: StepFailed} }).
		Add("never", func() Outcome { ran = true; return Passed("") }).
		Run()

	if ran {
		t.Error("check after failure ran with fail-fast")
	}
	if result.TotalSteps != 1 {
		t.Errorf("TotalSteps = %d, want 1", result.TotalSteps)
	}
	if result.FirstError() == nil {
		t.Error("failed step without error should get a generic one")
	}
}

func TestSuiteResult_Summary(t *testing.T) {
	r := SuiteResult{TotalSteps: 3, PassedSteps: 2, Warnings: 1, Success: true}
	if got := r.Summary(); got != "Checks passed: 2/3 passed, 1 warnings" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestStepStatus_MarshalText(t *testing.T) {
	b, err := StepWarning.MarshalText()
	if err != nil || string(b) != "warning" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
}
