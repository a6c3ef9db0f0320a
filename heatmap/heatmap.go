package heatmap

import (
	"github.com/katalvlaran/wdt/image"
	"github.com/katalvlaran/wdt/wdt"
)

// New builds an image.Image[float64] from a non-empty, rectangular 2D
// reading, the same validation gridgraph.NewGridGraph applies to its
// cell-value grid. Returns ErrEmptyHeatmap if values has no rows or no
// columns, ErrNonRectangular if any row length differs.
//
// Complexity: O(W×H) time and memory.
func New(values [][]float64) (*image.Image[float64], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyHeatmap
	}

	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	img, err := image.New[float64](w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		copy(img.Row(y), row)
	}

	return img, nil
}

// Threshold returns a wdt.ForegroundFunc that treats every pixel at or
// above level as a contact source, mirroring gridgraph's
// value >= LandThreshold land/water split.
func Threshold(img *image.Image[float64], level float64) wdt.ForegroundFunc {
	return func(i int) bool {
		return img.At(i) >= level
	}
}

// AlwaysIncluded returns a wdt.IncludedFunc that excludes nothing, the
// default inclusion policy when a reading has no dead pixels or region
// of interest to mask out.
func AlwaysIncluded() wdt.IncludedFunc {
	return func(int) bool { return true }
}
