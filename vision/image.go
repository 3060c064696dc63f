// Package vision decodes images and derives the size information the
// workflow nodes need from them: dimensions, aspect-ratio label and an
// upscaled copy meeting a minimum size.
package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"ebu_workflow/resolution"
)

// Image errors
var (
	ErrInvalidImage      = errors.New("vision: invalid image data")
	ErrInvalidDimensions = errors.New("vision: invalid dimensions")
	ErrEmptyImage        = errors.New("vision: empty image data")
)

// DecodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP data.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return DecodeImage(data)
}

// Dimensions returns the pixel size of img. A nil image has zero size.
func Dimensions(img image.Image) resolution.Size {
	if img == nil {
		return resolution.Size{}
	}
	b := img.Bounds()
	return resolution.Size{Width: b.Dx(), Height: b.Dy()}
}

// ResizeToMinimum scales img so that both sides reach at least target,
// rounding the result up to a multiple of 8. Images already large enough
// are still snapped to the 8-pixel grid.
func ResizeToMinimum(img image.Image, target resolution.Size) (image.Image, resolution.Upscale, error) {
	size := Dimensions(img)
	if size.Width == 0 || size.Height == 0 {
		return nil, resolution.Upscale{}, ErrEmptyImage
	}

	up, err := resolution.UpscaleToMinimum(size, target)
	if err != nil {
		return nil, resolution.Upscale{}, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}
	if up.Size == size {
		return img, up, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, up.Size.Width, up.Size.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst, up, nil
}

// SavePNG encodes img as PNG at path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
