package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"ebu_workflow/core"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("EBU_DATA_DIR", dir)
	t.Setenv("EBU_LOG_FILE", filepath.Join(dir, "ebu.log"))
	t.Setenv("EBU_LOG_LEVEL", "error")
	t.Setenv("EBU_HISTORY", "false")
	t.Setenv("EBU_PRESETS_FILE", "")
	return dir
}

func TestRunVersion(t *testing.T) {
	setupEnv(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"version"}, &out, &errOut)
	if code != core.ExitCodeSuccess {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), core.Version) {
		t.Errorf("output %q missing version %q", out.String(), core.Version)
	}
}

func TestRunResolution(t *testing.T) {
	setupEnv(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"resolution", "--bucket", "1:1", "--json"}, &out, &errOut)
	if code != core.ExitCodeSuccess {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), `"width": 1024`) {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRunUsageError(t *testing.T) {
	setupEnv(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"tile", "--bogus"}, &out, &errOut)
	if code != core.ExitCodeUsage {
		t.Errorf("exit code = %d, want %d", code, core.ExitCodeUsage)
	}
	if !strings.Contains(errOut.String(), "Error: ") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunConfigError(t *testing.T) {
	setupEnv(t)
	t.Setenv("EBU_CACHE_MAX_LINES", "zero")
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"version"}, &out, &errOut)
	if code != core.ExitCodeError {
		t.Errorf("exit code = %d, want %d", code, core.ExitCodeError)
	}
	if !strings.Contains(errOut.String(), "EBU_CACHE_MAX_LINES") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
