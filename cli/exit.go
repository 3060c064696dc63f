package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"ebu_workflow/core"
)

// UsageError marks bad flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return core.ExitCodeSuccess
	case errors.Is(err, context.Canceled):
		return core.ExitCodeSIGINT
	case errors.As(err, &usage):
		return core.ExitCodeUsage
	default:
		return core.ExitCodeError
	}
}

// PrintError writes err in red, followed by a usage hint for UsageErrors.
func PrintError(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
	fmt.Fprintln(w, err)

	var usage *UsageError
	if errors.As(err, &usage) {
		color.New(color.FgHiBlack).Fprintln(w, "Run 'ebu --help' for usage.")
	}
}
