package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ebu_workflow/linecache"
)

type cacheOutput struct {
	Sample    []string `json:"sample"`
	Input     []string `json:"input"`
	Combined  []string `json:"combined"`
	Persisted int      `json:"persisted"`
	Wrote     bool     `json:"wrote"`
	Path      string   `json:"path"`
}

func (a *app) newCacheCmd() *cobra.Command {
	var (
		dir, name string
		lines     string
		linesFile string
		sample    int
		maxLines  int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Merge lines into a deduplicated cache file and sample from it",
		Long: `cache merges new candidate lines into a deduplicated line file, shuffles
and trims it to --max lines, keeps the previous version as <name>.bk and
returns a random sample of stored lines that were not part of this call's
input. Without candidate lines it only samples the stored set.`,
		Example: `  ebu cache --dir prompts --name styles.txt --lines "$(cat new.txt)" --sample 3
  ebu cache --dir prompts --name styles.txt --sample 5 --seed 42`,
		Args: noArgs,
	}
	cmd.RunE = a.node("cache", func(cmd *cobra.Command, _ []string) error {
		if lines != "" && linesFile != "" {
			return usageErrorf("--lines and --lines-file are mutually exclusive")
		}
		if linesFile != "" {
			data, err := os.ReadFile(linesFile)
			if err != nil {
				return fmt.Errorf("read lines file: %w", err)
			}
			lines = string(data)
		}
		if !cmd.Flags().Changed("sample") {
			sample = a.cfg.CacheSample
		}
		if !cmd.Flags().Changed("max") {
			maxLines = a.cfg.CacheMaxLines
		}

		opts := []linecache.Option{linecache.WithLogger(a.logger)}
		if a.cfg.LockTimeout > 0 {
			opts = append(opts, linecache.WithLockTimeout(a.cfg.LockTimeout))
		}
		store := linecache.NewStore(opts...)

		req := linecache.Request{
			Dir:          dir,
			Name:         name,
			Candidates:   lines,
			SampleSize:   sample,
			RetentionCap: maxLines,
		}
		if cmd.Flags().Changed("seed") {
			req.ShuffleKey = &seed
		}

		res, err := store.Merge(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cacheOutput{
			Sample:    res.Sample,
			Input:     res.Input,
			Combined:  res.Combined,
			Persisted: res.Persisted,
			Wrote:     res.Wrote,
			Path:      linecache.Path(dir, name),
		}
		return a.emit(cmd, out, func(w io.Writer) {
			printFields(w,
				field{"path", out.Path},
				field{"persisted", out.Persisted},
				field{"wrote", out.Wrote},
			)
			printSection(w, "input", out.Input)
			printSection(w, "sample", out.Sample)
		})
	})

	f := cmd.Flags()
	f.StringVar(&dir, "dir", "", "cache directory (created if missing)")
	f.StringVar(&name, "name", "", "cache file name")
	f.StringVar(&lines, "lines", "", "newline-separated candidate lines")
	f.StringVar(&linesFile, "lines-file", "", "read candidate lines from a file")
	f.IntVar(&sample, "sample", 1, "number of stored lines to return (default $EBU_CACHE_SAMPLE)")
	f.IntVar(&maxLines, "max", 1000, "retention cap (default $EBU_CACHE_MAX_LINES)")
	f.Int64Var(&seed, "seed", 0, "shuffle key for reproducible results")
	return cmd
}
