package resolution

import (
	"fmt"
	"math"
	"strings"
)

// LookupRequest selects a base resolution and how to scale it.
type LookupRequest struct {
	Bucket      string // bucket name, or Custom
	Width       int    // used with Custom
	Height      int    // used with Custom
	Orientation Orientation
	Scale       float64
}

// Resolution is the outcome of a lookup.
type Resolution struct {
	Base   Size    `json:"base"`
	Scaled Size    `json:"scaled"`
	Scale  float64 `json:"scale"`
	Label  string  `json:"label"`
}

// Lookup resolves req against the built-in buckets.
func Lookup(req LookupRequest) (Resolution, error) {
	return DefaultTable().Lookup(req)
}

// Lookup resolves req against t. Profile orientation swaps both the base
// and the scaled size.
func (t *Table) Lookup(req LookupRequest) (Resolution, error) {
	if !(req.Scale > 0) || math.IsInf(req.Scale, 1) {
		return Resolution{}, fmt.Errorf("%w: scale %v must be positive", ErrInvalidDimensions, req.Scale)
	}

	var base Size
	if strings.EqualFold(strings.TrimSpace(req.Bucket), Custom) {
		if req.Width <= 0 || req.Height <= 0 {
			return Resolution{}, fmt.Errorf("%w: custom size %dx%d", ErrInvalidDimensions, req.Width, req.Height)
		}
		base = Size{Width: req.Width, Height: req.Height}
	} else {
		b, ok := t.Get(req.Bucket)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownBucket, req.Bucket)
		}
		base = Size{Width: b.Width, Height: b.Height}
	}

	scaled, err := scaleSize(base, req.Scale)
	if err != nil {
		return Resolution{}, err
	}
	if req.Orientation == Profile {
		base, scaled = base.Swap(), scaled.Swap()
	}

	return Resolution{
		Base:   base,
		Scaled: scaled,
		Scale:  req.Scale,
		Label:  scaled.String(),
	}, nil
}
