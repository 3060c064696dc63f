package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ebu_workflow/fileops"
	"ebu_workflow/textops"
)

func (a *app) newNameCmd() *cobra.Command {
	var (
		base, sep string
		seed      int64
	)

	cmd := &cobra.Command{
		Use:     "name",
		Short:   "Generate a timestamped unique name",
		Example: "  ebu name --base render --sep _",
		Args:    noArgs,
	}
	cmd.RunE = a.node("name", func(cmd *cobra.Command, _ []string) error {
		name := textops.Namer{Now: a.now}.UniqueName(base, sep, seed)
		return a.emit(cmd, map[string]string{"name": name}, func(w io.Writer) {
			fmt.Fprintln(w, name)
		})
	})

	f := cmd.Flags()
	f.StringVar(&base, "base", "image", "name prefix")
	f.StringVar(&sep, "sep", "_", "separator between prefix and timestamp")
	f.Int64Var(&seed, "seed", 0, "accepted for host compatibility; does not change the name")
	return cmd
}

func (a *app) newNewlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newline",
		Short: "Encode or decode newlines with a token",
	}

	for _, mode := range []struct {
		use, short string
		fn         func(text, token string) string
	}{
		{"encode", "Replace newlines with the token", textops.EncodeNewlines},
		{"decode", "Replace the token with newlines", textops.DecodeNewlines},
	} {
		var token string
		sub := &cobra.Command{
			Use:   mode.use + " [text]",
			Short: mode.short + " (reads stdin without an argument)",
			Args:  maxArgs(1),
		}
		fn := mode.fn
		sub.RunE = a.node("newline-"+mode.use, func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			out := fn(text, token)
			return a.emit(cmd, map[string]string{"text": out}, func(w io.Writer) {
				fmt.Fprintln(w, out)
			})
		})
		sub.Flags().StringVar(&token, "token", textops.DefaultNewlineToken, "delimiter token")
		cmd.AddCommand(sub)
	}
	return cmd
}

func (a *app) newFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Append to, overwrite or read a text file",
	}

	var (
		dir, name, text string
		overwrite       bool
	)
	write := &cobra.Command{
		Use:     "write",
		Short:   "Append (or overwrite with) a line of text",
		Example: "  ebu file write --dir out --name prompts.txt --text 'a red fox'",
		Args:    noArgs,
	}
	write.RunE = a.node("file-write", func(cmd *cobra.Command, _ []string) error {
		if err := fileops.Write(dir, name, text, overwrite); err != nil {
			return err
		}
		return a.emit(cmd, map[string]interface{}{"dir": dir, "name": name, "overwrite": overwrite}, func(io.Writer) {})
	})
	write.Flags().StringVar(&dir, "dir", "", "target directory (created if missing)")
	write.Flags().StringVar(&name, "name", "", "file name")
	write.Flags().StringVar(&text, "text", "", "text to write")
	write.Flags().BoolVar(&overwrite, "overwrite", false, "truncate the file instead of appending")

	var readDir, readName string
	read := &cobra.Command{
		Use:   "read",
		Short: "Print a file, or nothing if it does not exist",
		Args:  noArgs,
	}
	read.RunE = a.node("file-read", func(cmd *cobra.Command, _ []string) error {
		content, err := fileops.Read(readDir, readName)
		if err != nil {
			return err
		}
		return a.emit(cmd, map[string]string{"content": content}, func(w io.Writer) {
			fmt.Fprint(w, content)
		})
	})
	read.Flags().StringVar(&readDir, "dir", "", "directory")
	read.Flags().StringVar(&readName, "name", "", "file name")

	cmd.AddCommand(write, read)
	return cmd
}

func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	// Drop the terminating newline that echo and most editors add.
	text, ok := strings.CutSuffix(string(data), "\n")
	if ok {
		text = strings.TrimSuffix(text, "\r")
	}
	return text, nil
}
