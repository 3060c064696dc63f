// Package validation runs the environment checks behind "ebu check":
// a sequence of named steps printed with live progress and a summary.
package validation

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// StepStatus is the outcome of one step.
type StepStatus int

const (
	StepPassed StepStatus = iota
	StepFailed
	StepWarning
	StepSkipped
)

// String returns the string representation of a step status.
func (s StepStatus) String() string {
	switch s {
	case StepPassed:
		return "passed"
	case StepFailed:
		return "failed"
	case StepWarning:
		return "warning"
	case StepSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s StepStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is what a check function reports.
type Outcome struct {
	Status  StepStatus
	Message string
	Err     error
}

// Passed, Failed, Warning and Skipped build outcomes.
func Passed(msg string) Outcome  { return Outcome{Status: StepPassed, Message: msg} }
func Warning(msg string) Outcome { return Outcome{Status: StepWarning, Message: msg} }
func Skipped(msg string) Outcome { return Outcome{Status: StepSkipped, Message: msg} }
func Failed(err error) Outcome   { return Outcome{Status: StepFailed, Err: err} }

// Step is one executed check.
type Step struct {
	Name    string        `json:"name"`
	Status  StepStatus    `json:"status"`
	Message string        `json:"message,omitempty"`
	Error   error         `json:"-"`
	Latency time.Duration `json:"latency_ns"`
}

// SuiteResult represents the complete result of a suite run.
type SuiteResult struct {
	Steps       []Step        `json:"steps"`
	TotalSteps  int           `json:"total"`
	PassedSteps int           `json:"passed"`
	FailedSteps int           `json:"failed"`
	Warnings    int           `json:"warnings"`
	Duration    time.Duration `json:"duration_ns"`
	Success     bool          `json:"success"`
}

type check struct {
	name string
	fn   func() Outcome
}

// Suite runs checks in order.
type Suite struct {
	title        string
	output       io.Writer
	checks       []check
	showProgress bool
	failFast     bool
}

// NewSuite creates a suite printing progress to stdout.
func NewSuite(title string) *Suite {
	return &Suite{
		title:        title,
		output:       os.Stdout,
		showProgress: true,
	}
}

// WithOutput sets the output writer for progress messages.
func (s *Suite) WithOutput(w io.Writer) *Suite {
	s.output = w
	return s
}

// WithShowProgress enables or disables progress output.
func (s *Suite) WithShowProgress(show bool) *Suite {
	s.showProgress = show
	return s
}

// WithFailFast stops at the first failed step.
func (s *Suite) WithFailFast(failFast bool) *Suite {
	s.failFast = failFast
	return s
}

// Add appends a named check.
func (s *Suite) Add(name string, fn func() Outcome) *Suite {
	s.checks = append(s.checks, check{name: name, fn: fn})
	return s
}

// Run executes every check and returns the collected result.
func (s *Suite) Run() SuiteResult {
	start := time.Now()
	steps := make([]Step, 0, len(s.checks))

	if s.showProgress {
		s.printHeader()
	}

	for _, c := range s.checks {
		step := s.runStep(c)
		steps = append(steps, step)
		if s.failFast && step.Status == StepFailed {
			break
		}
	}

	result := buildResult(steps, start)
	if s.showProgress {
		s.printSummary(result)
	}
	return result
}

func (s *Suite) runStep(c check) Step {
	if s.showProgress {
		fmt.Fprintf(s.output, "  ◌ %s...", c.name)
	}

	started := time.Now()
	out := c.fn()
	step := Step{
		Name:    c.name,
		Status:  out.Status,
		Message: out.Message,
		Error:   out.Err,
		Latency: time.Since(started),
	}
	if step.Status == StepFailed && step.Error == nil {
		step.Error = fmt.Errorf("%s failed", c.name)
	}

	if s.showProgress {
		s.printStep(step)
	}
	return step
}

func buildResult(steps []Step, start time.Time) SuiteResult {
	result := SuiteResult{
		Steps:      steps,
		TotalSteps: len(steps),
		Duration:   time.Since(start),
		Success:    true,
	}
	for _, step := range steps {
		switch step.Status {
		case StepPassed:
			result.PassedSteps++
		case StepFailed:
			result.FailedSteps++
			result.Success = false
		case StepWarning:
			result.Warnings++
		}
	}
	return result
}

func (s *Suite) printHeader() {
	fmt.Fprintln(s.output)
	color.New(color.FgCyan, color.Bold).Fprintf(s.output, "━━━ %s ━━━\n", s.title)
	fmt.Fprintln(s.output)
}

func (s *Suite) printStep(step Step) {
	var icon string
	var clr *color.Color

	switch step.Status {
	case StepPassed:
		icon, clr = "✓", color.New(color.FgGreen)
	case StepFailed:
		icon, clr = "✗", color.New(color.FgRed)
	case StepWarning:
		icon, clr = "!", color.New(color.FgYellow)
	default:
		icon, clr = "○", color.New(color.FgHiBlack)
	}

	// Overwrite the "running" line.
	fmt.Fprintf(s.output, "\r")
	clr.Fprintf(s.output, "  %s %s", icon, step.Name)
	if step.Message != "" {
		color.New(color.FgHiBlack).Fprintf(s.output, " - %s", step.Message)
	}
	fmt.Fprintln(s.output)

	if step.Status == StepFailed && step.Error != nil {
		color.New(color.FgRed).Fprintf(s.output, "    └─ %s\n", step.Error.Error())
	}
}

func (s *Suite) printSummary(result SuiteResult) {
	fmt.Fprintln(s.output)

	dim := color.New(color.FgHiBlack)
	if result.Success {
		ok := color.New(color.FgGreen, color.Bold)
		ok.Fprintf(s.output, "━━━ Checks Passed ")
		dim.Fprintf(s.output, "(%d/%d passed in %v)", result.PassedSteps, result.TotalSteps, result.Duration.Round(time.Millisecond))
		ok.Fprintln(s.output, " ━━━")
	} else {
		fail := color.New(color.FgRed, color.Bold)
		fail.Fprintf(s.output, "━━━ Checks Failed ")
		dim.Fprintf(s.output, "(%d passed, %d failed)", result.PassedSteps, result.FailedSteps)
		fail.Fprintln(s.output, " ━━━")
	}
	fmt.Fprintln(s.output)
}

// FirstError returns the error of the first failed step, or nil.
func (r SuiteResult) FirstError() error {
	for _, step := range r.Steps {
		if step.Status == StepFailed {
			return step.Error
		}
	}
	return nil
}

// Summary returns a one-line description of the result.
func (r SuiteResult) Summary() string {
	var sb strings.Builder
	if r.Success {
		sb.WriteString("Checks passed: ")
	} else {
		sb.WriteString("Checks failed: ")
	}
	fmt.Fprintf(&sb, "%d/%d passed", r.PassedSteps, r.TotalSteps)
	if r.FailedSteps > 0 {
		fmt.Fprintf(&sb, ", %d failed", r.FailedSteps)
	}
	if r.Warnings > 0 {
		fmt.Fprintf(&sb, ", %d warnings", r.Warnings)
	}
	return sb.String()
}
