// Package barrier gates a payload on the presence of an image, so a
// pipeline branch only continues once that image has been produced.
package barrier

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyGate is returned when a gating image is missing or has no pixels.
var ErrEmptyGate = errors.New("barrier: gating image is empty")

// Pass returns payload unchanged if gate holds at least one pixel.
func Pass[T any](payload T, gate image.Image) (T, error) {
	if isEmpty(gate) {
		var zero T
		return zero, ErrEmptyGate
	}
	return payload, nil
}

// PassAll is Pass with several gates, all of which must be non-empty.
func PassAll[T any](payload T, gates ...image.Image) (T, error) {
	var zero T
	if len(gates) == 0 {
		return zero, ErrEmptyGate
	}
	for i, g := range gates {
		if isEmpty(g) {
			return zero, fmt.Errorf("%w: gate %d", ErrEmptyGate, i)
		}
	}
	return payload, nil
}

// isEmpty reports whether img is nil, a typed nil pointer, or has no
// pixels.
func isEmpty(img image.Image) (empty bool) {
	if img == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			empty = true
		}
	}()
	return img.Bounds().Empty()
}
