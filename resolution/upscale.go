package resolution

import "fmt"

// Upscale is the result of UpscaleToMinimum.
type Upscale struct {
	Scale float64 `json:"scale"`
	Size  Size    `json:"size"`
}

// UpscaleToMinimum finds the smallest scale, never below 1, that brings
// img up to at least target on both axes.
func UpscaleToMinimum(img, target Size) (Upscale, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return Upscale{}, fmt.Errorf("%w: image %s", ErrInvalidDimensions, img)
	}
	if target.Width < 0 || target.Height < 0 {
		return Upscale{}, fmt.Errorf("%w: minimum %s", ErrInvalidDimensions, target)
	}

	scale := max(1.0,
		float64(target.Width)/float64(img.Width),
		float64(target.Height)/float64(img.Height),
	)
	size, err := scaleSize(img, scale)
	if err != nil {
		return Upscale{}, err
	}
	return Upscale{Scale: scale, Size: size}, nil
}
