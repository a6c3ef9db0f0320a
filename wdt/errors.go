package wdt

import "errors"

var (
	// ErrDimensionTooSmall indicates the output image is smaller than
	// the 2x2 minimum a weighted distance transform requires.
	ErrDimensionTooSmall = errors.New("wdt: image must be at least 2x2")

	// ErrBadLimit indicates WithLimit was given a non-positive value.
	ErrBadLimit = errors.New("wdt: limit must be positive")
)
