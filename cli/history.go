package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ebu_workflow/db"
)

func (a *app) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent node runs",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.history == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Run history is disabled (set EBU_HISTORY=true to enable).")
				return nil
			}
			runs, err := a.history.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if runs == nil {
				runs = []db.Run{}
			}
			return a.emit(cmd, runs, func(w io.Writer) {
				printRuns(w, runs)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}

func printRuns(w io.Writer, runs []db.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	ok := color.New(color.FgGreen)
	failed := color.New(color.FgRed)
	dim := color.New(color.FgHiBlack)

	for _, r := range runs {
		dim.Fprintf(w, "%s  %s  ", r.CreatedAt.Local().Format(time.DateTime), r.RunID)
		fmt.Fprintf(w, "%-14s ", r.Node)
		if r.Status == db.StatusOK {
			ok.Fprintf(w, "%-5s", r.Status)
		} else {
			failed.Fprintf(w, "%-5s", r.Status)
		}
		fmt.Fprintf(w, " %6dms", r.DurationMS)
		if r.Error != "" {
			dim.Fprintf(w, "  %s", r.Error)
		}
		fmt.Fprintln(w)
	}
}
