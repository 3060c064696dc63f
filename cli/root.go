// Package cli is the ebu command tree. Every workflow node is a subcommand
// so the nodes can be scripted outside the image-generation host.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ebu_workflow/core"
	"ebu_workflow/db"
	"ebu_workflow/logging"
)

// Options carries the dependencies of the command tree. Nil Logger and
// History are built from Config on first use.
type Options struct {
	Config  *core.Config
	Logger  *logging.Logger
	History *db.Database
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Now     func() time.Time
}

type app struct {
	cfg     *core.Config
	logger  *logging.Logger
	history *db.Database
	now     func() time.Time

	ownLogger  bool
	ownHistory bool

	logLevel string
	jsonOut  bool
}

func newApp(opts Options) *app {
	a := &app{
		cfg:     opts.Config,
		logger:  opts.Logger,
		history: opts.History,
		now:     opts.Now,
	}
	if a.cfg == nil {
		a.cfg = &core.Config{
			CacheMaxLines:   core.DefaultCacheMaxLines,
			CacheSample:     core.DefaultCacheSample,
			LockTimeout:     core.DefaultLockTimeoutSeconds * time.Second,
			AspectTolerance: core.DefaultAspectTolerance,
			LogLevel:        core.DefaultLogLevel,
		}
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// Run builds the command tree, executes it with args and releases the
// logger and history database afterwards.
func Run(ctx context.Context, args []string, opts Options) error {
	a := newApp(opts)
	root := a.rootCmd()
	if opts.In != nil {
		root.SetIn(opts.In)
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}
	root.SetArgs(args)

	defer a.close()
	return root.ExecuteContext(ctx)
}

// NewRootCmd returns the command tree without running it.
func NewRootCmd(opts Options) *cobra.Command {
	return newApp(opts).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ebu",
		Short: "EBU workflow node utilities",
		Long: `ebu runs the EBU workflow nodes from the command line: resolution and
tile arithmetic, aspect-ratio classification, text and file helpers,
pipeline barriers and the deduplicated line cache.`,
		Version:           core.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides EBU_LOG_LEVEL")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print results as JSON")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	root.AddCommand(
		a.newResolutionCmd(),
		a.newTileCmd(),
		a.newAspectCmd(),
		a.newUpscaleCmd(),
		a.newNameCmd(),
		a.newFileCmd(),
		a.newNewlineCmd(),
		a.newCacheCmd(),
		a.newBarrierCmd(),
		a.newHistoryCmd(),
		a.newCheckCmd(),
		a.newVersionCmd(),
	)
	return root
}

// setup creates the logger and opens run history before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.logger == nil {
		level := a.cfg.LogLevel
		if a.logLevel != "" {
			if !logging.IsValidLevel(a.logLevel) {
				return usageErrorf("unknown log level %q", a.logLevel)
			}
			level = a.logLevel
		}
		logger, err := logging.NewLogger(logging.Options{
			Level:       logging.ParseLogLevelString(level, logging.InfoLevel),
			Development: a.cfg.DevMode,
			FilePath:    a.cfg.LogFile,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
		a.ownLogger = true
	}

	if a.history == nil && a.cfg.HistoryEnabled && a.cfg.HistoryDB != "" {
		hist, err := db.Open(a.cfg.HistoryDB)
		if err != nil {
			a.logger.Warn("run history unavailable", zap.String("path", a.cfg.HistoryDB), zap.Error(err))
			return nil
		}
		a.history = hist
		a.ownHistory = true

		pruned, err := hist.PruneRuns(cmd.Context(), a.cfg.HistoryRetention(), a.now())
		if err != nil {
			a.logger.Warn("failed to prune run history", zap.Error(err))
		} else if pruned > 0 {
			a.logger.Debug("pruned run history", zap.Int64("deleted", pruned))
		}
	}
	return nil
}

func (a *app) close() {
	if a.ownHistory && a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Warn("failed to close run history", zap.Error(err))
		}
	}
	if a.ownLogger && a.logger != nil {
		_ = a.logger.Sync()
	}
}

type runFunc func(cmd *cobra.Command, args []string) error

// node wraps a command body with timing, logging and run history.
func (a *app) node(name string, run runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := a.now()
		runID := db.NewRunID()
		log := logging.OrNop(a.logger)

		err := run(cmd, args)
		elapsed := a.now().Sub(start)

		status, errText := db.StatusOK, ""
		if err != nil {
			status, errText = db.StatusError, err.Error()
		}
		metrics := logging.NodeFields(logging.NodeMetrics{Node: name, RunID: runID, Status: status, Duration: elapsed})
		if err != nil {
			log.Warn("node failed", metrics, zap.Error(err))
		} else {
			log.Debug("node finished", metrics)
		}

		if a.history != nil {
			_, herr := a.history.RecordRun(context.WithoutCancel(cmd.Context()), db.Run{
				RunID:      runID,
				Node:       name,
				Status:     status,
				DurationMS: elapsed.Milliseconds(),
				Error:      errText,
				CreatedAt:  start,
			})
			if herr != nil {
				log.Warn("failed to record run", zap.Error(herr))
			}
		}
		return err
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%s takes no arguments, got %q", cmd.CommandPath(), args)
	}
	return nil
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return usageErrorf("%s accepts at most %d argument(s), got %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.emit(cmd, map[string]string{
				"version":    core.Version,
				"build_time": core.BuildTime,
				"commit":     core.GitCommit,
			}, func(w io.Writer) {
				fmt.Fprintln(w, "ebu "+core.GetVersionInfo())
			})
		},
	}
}
