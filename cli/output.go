package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var labelColor = color.New(color.FgCyan)

type field struct {
	label string
	value interface{}
}

// printFields writes aligned "label: value" rows.
func printFields(w io.Writer, fields ...field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}
	for _, f := range fields {
		labelColor.Fprintf(w, "%-*s", width+1, f.label+":")
		fmt.Fprintf(w, " %v\n", f.value)
	}
}

// printSection writes a label followed by one indented row per line.
func printSection(w io.Writer, label string, lines []string) {
	labelColor.Fprintf(w, "%s:", label)
	if len(lines) == 0 {
		fmt.Fprintln(w, " (none)")
		return
	}
	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// emit writes v as indented JSON when --json is set, otherwise calls text.
func (a *app) emit(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
