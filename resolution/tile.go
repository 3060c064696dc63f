package resolution

import "fmt"

// TileRequest holds the inputs of a tile size computation. Divisors are
// per-axis split counts.
type TileRequest struct {
	Image            Size
	ProfileDivisor   Size
	LandscapeDivisor Size
	Padding          Size
}

// TileSize returns ceil(dim/divisor)+padding per axis. Landscape divisors
// apply only when the image is strictly wider than tall.
func TileSize(req TileRequest) (Size, error) {
	if req.Image.Width <= 0 || req.Image.Height <= 0 {
		return Size{}, fmt.Errorf("%w: image %s", ErrInvalidDimensions, req.Image)
	}
	if req.Padding.Width < 0 || req.Padding.Height < 0 {
		return Size{}, fmt.Errorf("%w: padding %s", ErrInvalidDimensions, req.Padding)
	}

	div := req.ProfileDivisor
	if req.Image.Width > req.Image.Height {
		div = req.LandscapeDivisor
	}
	if div.Width < 1 || div.Height < 1 {
		return Size{}, fmt.Errorf("%w: divisor %s", ErrInvalidDimensions, div)
	}

	return Size{
		Width:  ceilDiv(req.Image.Width, div.Width) + req.Padding.Width,
		Height: ceilDiv(req.Image.Height, div.Height) + req.Padding.Height,
	}, nil
}
