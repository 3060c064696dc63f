package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ebu_workflow/cli"
	"ebu_workflow/core"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run loads configuration from the environment and executes the command
// tree, returning the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := core.LoadConfig()
	if err != nil {
		cli.PrintError(stderr, err)
		return core.ExitCodeError
	}

	err = cli.Run(ctx, args, cli.Options{
		Config: cfg,
		Out:    stdout,
		Err:    stderr,
	})
	if err != nil {
		cli.PrintError(stderr, err)
	}
	return cli.ExitCode(err)
}
