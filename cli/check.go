package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ebu_workflow/core"
	"ebu_workflow/core/validation"
	"ebu_workflow/db"
	"ebu_workflow/logging"
	"ebu_workflow/resolution"
)

// minFreeBytes is the free space "ebu check" expects under the data directory.
const minFreeBytes = 64 * core.BytesPerMB

var errChecksFailed = errors.New("environment check failed")

func (a *app) newCheckCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check configuration, data directory and run history",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite := validation.NewSuite("ebu environment").
				WithOutput(cmd.OutOrStdout()).
				WithShowProgress(!a.jsonOut)
			a.addChecks(suite, envFile)

			result := suite.Run()
			if a.jsonOut {
				if err := a.emit(cmd, result, func(io.Writer) {}); err != nil {
					return err
				}
			}
			if !result.Success {
				return fmt.Errorf("%w: %v", errChecksFailed, result.FirstError())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file expected next to the workflow")
	return cmd
}

func (a *app) addChecks(suite *validation.Suite, envFile string) {
	cfg := a.cfg

	suite.Add(".env file", func() validation.Outcome {
		return validation.CheckEnvFile(envFile)
	})

	suite.Add("Data directory", func() validation.Outcome {
		if cfg.DataDir == "" {
			return validation.Skipped("not configured")
		}
		return validation.CheckWritableDir(cfg.DataDir)
	})

	suite.Add("Log level", func() validation.Outcome {
		if !logging.IsValidLevel(cfg.LogLevel) {
			return validation.Failed(fmt.Errorf("unknown log level %q", cfg.LogLevel))
		}
		return validation.Passed(cfg.LogLevel)
	})

	suite.Add("Resolution presets", func() validation.Outcome {
		if cfg.PresetsFile == "" {
			return validation.Skipped("built-in buckets only")
		}
		table, err := resolution.TableWithPresets(cfg.PresetsFile)
		if err != nil {
			return validation.Failed(err)
		}
		return validation.Passed(fmt.Sprintf("%d buckets", len(table.Names())))
	})

	suite.Add("Run history", func() validation.Outcome {
		switch {
		case a.history != nil:
			return validation.Passed(a.history.Path())
		case !cfg.HistoryEnabled || cfg.HistoryDB == "":
			return validation.Skipped("disabled")
		}
		hist, err := db.Open(cfg.HistoryDB)
		if err != nil {
			return validation.Failed(err)
		}
		defer hist.Close()
		return validation.Passed(hist.Path())
	})

	suite.Add("Disk space", func() validation.Outcome {
		if cfg.DataDir == "" {
			return validation.Skipped("no data directory")
		}
		info, err := validation.GetDiskSpace(cfg.DataDir)
		if err != nil {
			return validation.Warning(err.Error())
		}
		if err := validation.CheckDiskSpace(cfg.DataDir, minFreeBytes); err != nil {
			return validation.Failed(err)
		}
		return validation.Passed(info.FreeFormatted + " free")
	})
}
