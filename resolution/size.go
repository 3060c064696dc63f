// Package resolution holds the image size arithmetic used by the workflow
// nodes: bucket lookup, tile sizing and upscale-to-minimum.
//
// Every computed output dimension is rounded up to a multiple of 8, the
// latent granularity of the image models the host drives.
package resolution

import (
	"fmt"
	"math"
	"strings"
)

// Multiple is the granularity of every scaled output dimension.
const Multiple = 8

// MaxDimension bounds every computed dimension.
const MaxDimension = math.MaxInt32

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Swap returns the size with width and height exchanged.
func (s Size) Swap() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// ParseSize parses "WxH" (also accepting "W,H" and "W:H").
func ParseSize(v string) (Size, error) {
	v = strings.TrimSpace(v)
	for _, sep := range []string{"x", "X", ",", ":"} {
		if w, h, ok := strings.Cut(v, sep); ok {
			var s Size
			if _, err := fmt.Sscanf(strings.TrimSpace(w)+" "+strings.TrimSpace(h), "%d %d", &s.Width, &s.Height); err != nil {
				return Size{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidDimensions, v)
			}
			return s, nil
		}
	}
	return Size{}, fmt.Errorf("%w: expected WxH, got %q", ErrInvalidDimensions, v)
}

// RoundUpToMultiple rounds n up to the next multiple of m. Values already on
// a multiple, and any m < 1, return n unchanged.
func RoundUpToMultiple(n, m int) int {
	if m < 1 {
		return n
	}
	if r := n % m; r != 0 {
		if n < 0 {
			return n - r
		}
		return n + m - r
	}
	return n
}

// scaleDim returns ceil(dim*scale) rounded up to Multiple. Results beyond
// MaxDimension, or a non-finite scale, are ErrInvalidDimensions.
func scaleDim(dim int, scale float64) (int, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 0, fmt.Errorf("%w: scale %v is not finite", ErrInvalidDimensions, scale)
	}
	v := math.Ceil(float64(dim) * scale)
	if v > MaxDimension-Multiple {
		return 0, fmt.Errorf("%w: %d scaled by %v exceeds %d", ErrInvalidDimensions, dim, scale, MaxDimension)
	}
	return RoundUpToMultiple(int(v), Multiple), nil
}

// scaleSize scales both axes of s.
func scaleSize(s Size, scale float64) (Size, error) {
	w, err := scaleDim(s.Width, scale)
	if err != nil {
		return Size{}, err
	}
	h, err := scaleDim(s.Height, scale)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
