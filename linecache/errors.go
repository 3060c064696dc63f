package linecache

import "errors"

var (
	// ErrInvalidRequest is returned for a missing name, negative sample size
	// or a retention cap below one.
	ErrInvalidRequest = errors.New("linecache: invalid request")

	// ErrLockTimeout is returned when the location stays locked past the
	// store's lock timeout.
	ErrLockTimeout = errors.New("linecache: timed out waiting for lock")
)
