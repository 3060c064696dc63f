package resolution

import "errors"

var (
	// ErrUnknownBucket is returned when a bucket name is not in the table.
	ErrUnknownBucket = errors.New("resolution: unknown bucket")

	// ErrInvalidDimensions covers non-positive sizes, scales and divisors.
	ErrInvalidDimensions = errors.New("resolution: invalid dimensions")

	// ErrInvalidPresets is returned for unreadable or malformed preset files.
	ErrInvalidPresets = errors.New("resolution: invalid presets")
)
