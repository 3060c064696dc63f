package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ebu_workflow/resolution"
	"ebu_workflow/vision"
)

func (a *app) newResolutionCmd() *cobra.Command {
	var (
		bucket      string
		orientation string
		presets     string
		width       int
		height      int
		scale       float64
	)

	cmd := &cobra.Command{
		Use:   "resolution",
		Short: "Look up a bucket resolution and scale it",
		Example: `  ebu resolution --bucket 16:9 --orientation Profile --scale 1.5
  ebu resolution --bucket custom --width 1000 --height 700`,
		Args: noArgs,
	}
	cmd.RunE = a.node("resolution", func(cmd *cobra.Command, _ []string) error {
		orient, err := resolution.ParseOrientation(orientation)
		if err != nil {
			return &UsageError{Err: err}
		}
		if presets == "" {
			presets = a.cfg.PresetsFile
		}
		table, err := resolution.TableWithPresets(presets)
		if err != nil {
			return err
		}

		res, err := table.Lookup(resolution.LookupRequest{
			Bucket:      bucket,
			Width:       width,
			Height:      height,
			Orientation: orient,
			Scale:       scale,
		})
		if err != nil {
			return err
		}
		return a.emit(cmd, res, func(w io.Writer) {
			printFields(w,
				field{"base", res.Base},
				field{"scaled", res.Scaled},
				field{"scale", res.Scale},
				field{"label", res.Label},
			)
		})
	})

	f := cmd.Flags()
	f.StringVar(&bucket, "bucket", "1:1", "bucket name, or 'custom' with --width/--height")
	f.StringVar(&orientation, "orientation", string(resolution.Landscape), "Landscape or Profile")
	f.Float64Var(&scale, "scale", 1, "scale factor")
	f.IntVar(&width, "width", 0, "custom base width")
	f.IntVar(&height, "height", 0, "custom base height")
	f.StringVar(&presets, "presets", "", "preset file adding buckets (default $EBU_PRESETS_FILE)")
	return cmd
}

func (a *app) newTileCmd() *cobra.Command {
	var (
		width, height int
		profileDiv    string
		landscapeDiv  string
		padding       string
	)

	cmd := &cobra.Command{
		Use:     "tile",
		Short:   "Compute the tile size for tiled upscaling",
		Example: "  ebu tile --width 1920 --height 1080 --profile-div 2x3 --landscape-div 3x2 --padding 64x64",
		Args:    noArgs,
	}
	cmd.RunE = a.node("tile", func(cmd *cobra.Command, _ []string) error {
		req := resolution.TileRequest{Image: resolution.Size{Width: width, Height: height}}
		var err error
		if req.ProfileDivisor, err = parseSizeFlag("profile-div", profileDiv); err != nil {
			return err
		}
		if req.LandscapeDivisor, err = parseSizeFlag("landscape-div", landscapeDiv); err != nil {
			return err
		}
		if req.Padding, err = parseSizeFlag("padding", padding); err != nil {
			return err
		}

		tile, err := resolution.TileSize(req)
		if err != nil {
			return err
		}
		return a.emit(cmd, tile, func(w io.Writer) {
			printFields(w, field{"tile", tile})
		})
	})

	f := cmd.Flags()
	f.IntVar(&width, "width", 0, "image width")
	f.IntVar(&height, "height", 0, "image height")
	f.StringVar(&profileDiv, "profile-div", "2x2", "divisors used when height >= width")
	f.StringVar(&landscapeDiv, "landscape-div", "2x2", "divisors used when width > height")
	f.StringVar(&padding, "padding", "0x0", "padding added to each tile side")
	return cmd
}

type aspectOutput struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Label  string  `json:"label"`
	Ratio  float64 `json:"ratio"`
}

func (a *app) newAspectCmd() *cobra.Command {
	var (
		imagePath     string
		width, height int
		tolerance     float64
	)

	cmd := &cobra.Command{
		Use:   "aspect",
		Short: "Classify an image's aspect ratio",
		Example: `  ebu aspect --image render.png
  ebu aspect --width 1920 --height 1080 --tolerance 0.02`,
		Args: noArgs,
	}
	cmd.RunE = a.node("aspect", func(cmd *cobra.Command, _ []string) error {
		size, err := imageOrSize(imagePath, width, height)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("tolerance") {
			tolerance = a.cfg.AspectTolerance
		}

		c, err := vision.ClassifyAspectRatio(size.Width, size.Height, tolerance)
		if err != nil {
			return err
		}
		out := aspectOutput{Width: size.Width, Height: size.Height, Label: c.Label, Ratio: c.Ratio}
		return a.emit(cmd, out, func(w io.Writer) {
			printFields(w,
				field{"size", size},
				field{"ratio", fmt.Sprintf("%.4f", c.Ratio)},
				field{"label", c.Label},
			)
		})
	})

	f := cmd.Flags()
	f.StringVar(&imagePath, "image", "", "image file to measure")
	f.IntVar(&width, "width", 0, "width, when no image is given")
	f.IntVar(&height, "height", 0, "height, when no image is given")
	f.Float64Var(&tolerance, "tolerance", vision.DefaultTolerance, "maximum ratio distance (default $EBU_ASPECT_TOLERANCE)")
	return cmd
}

type upscaleOutput struct {
	resolution.Upscale
	Output string `json:"output,omitempty"`
}

func (a *app) newUpscaleCmd() *cobra.Command {
	var (
		imagePath, outPath  string
		width, height       int
		minWidth, minHeight int
	)

	cmd := &cobra.Command{
		Use:   "upscale-min",
		Short: "Scale dimensions (or an image) up to a minimum size",
		Example: `  ebu upscale-min --width 512 --height 768 --min-width 1024 --min-height 1024
  ebu upscale-min --image in.png --out big.png`,
		Args: noArgs,
	}
	cmd.RunE = a.node("upscale-min", func(cmd *cobra.Command, _ []string) error {
		target := resolution.Size{Width: minWidth, Height: minHeight}
		out := upscaleOutput{}

		if imagePath != "" {
			img, err := vision.DecodeFile(imagePath)
			if err != nil {
				return err
			}
			resized, up, err := vision.ResizeToMinimum(img, target)
			if err != nil {
				return err
			}
			out.Upscale = up
			if outPath != "" {
				if err := vision.SavePNG(outPath, resized); err != nil {
					return err
				}
				out.Output = outPath
			}
		} else {
			if outPath != "" {
				return usageErrorf("--out requires --image")
			}
			up, err := resolution.UpscaleToMinimum(resolution.Size{Width: width, Height: height}, target)
			if err != nil {
				return err
			}
			out.Upscale = up
		}

		return a.emit(cmd, out, func(w io.Writer) {
			fields := []field{
				{"scale", fmt.Sprintf("%.4f", out.Scale)},
				{"size", out.Size},
			}
			if out.Output != "" {
				fields = append(fields, field{"output", out.Output})
			}
			printFields(w, fields...)
		})
	})

	f := cmd.Flags()
	f.StringVar(&imagePath, "image", "", "image file to upscale")
	f.StringVar(&outPath, "out", "", "write the upscaled image here as PNG")
	f.IntVar(&width, "width", 0, "width, when no image is given")
	f.IntVar(&height, "height", 0, "height, when no image is given")
	f.IntVar(&minWidth, "min-width", 1024, "minimum width")
	f.IntVar(&minHeight, "min-height", 1024, "minimum height")
	return cmd
}

func parseSizeFlag(name, value string) (resolution.Size, error) {
	s, err := resolution.ParseSize(value)
	if err != nil {
		return resolution.Size{}, &UsageError{Err: fmt.Errorf("--%s: %w", name, err)}
	}
	return s, nil
}

// imageOrSize measures the image at path, or falls back to explicit sizes.
func imageOrSize(path string, width, height int) (resolution.Size, error) {
	if path == "" {
		if width <= 0 || height <= 0 {
			return resolution.Size{}, usageErrorf("either --image or positive --width and --height are required")
		}
		return resolution.Size{Width: width, Height: height}, nil
	}
	img, err := vision.DecodeFile(path)
	if err != nil {
		return resolution.Size{}, err
	}
	return vision.Dimensions(img), nil
}
