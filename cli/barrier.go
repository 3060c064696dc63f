package cli

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ebu_workflow/barrier"
	"ebu_workflow/vision"
)

func (a *app) newBarrierCmd() *cobra.Command {
	var gatePath, payload string

	cmd := &cobra.Command{
		Use:   "barrier",
		Short: "Pass a payload through only once a gating image exists",
		Long: `barrier prints --payload unchanged if the --gate image exists and has
pixels, and fails otherwise. Scripts use it to hold back a step until an
image from an earlier step has been written.`,
		Example: "  ebu barrier --gate out/render.png --payload 'next prompt'",
		Args:    noArgs,
	}
	cmd.RunE = a.node("barrier", func(cmd *cobra.Command, _ []string) error {
		gate, err := loadGate(gatePath)
		if err != nil {
			return err
		}
		out, err := barrier.Pass(payload, gate)
		if err != nil {
			return err
		}
		return a.emit(cmd, map[string]string{"payload": out}, func(w io.Writer) {
			fmt.Fprintln(w, out)
		})
	})

	cmd.Flags().StringVar(&gatePath, "gate", "", "gating image file")
	cmd.Flags().StringVar(&payload, "payload", "", "value to pass through")
	return cmd
}

// loadGate decodes the gate image. Missing or empty files are an absent
// gate rather than an error.
func loadGate(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	img, err := vision.DecodeFile(path)
	switch {
	case err == nil:
		return img, nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, vision.ErrEmptyImage):
		return nil, nil
	default:
		return nil, err
	}
}
