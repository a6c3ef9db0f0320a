package heatmap

import "errors"

var (
	// ErrEmptyHeatmap indicates the input reading has no rows or no
	// columns.
	ErrEmptyHeatmap = errors.New("heatmap: reading has no rows or columns")

	// ErrNonRectangular indicates the input reading's rows are not all
	// the same length.
	ErrNonRectangular = errors.New("heatmap: reading rows have differing lengths")

	// ErrRectOutOfBounds indicates a Rect extends outside its image or
	// is empty.
	ErrRectOutOfBounds = errors.New("heatmap: rect out of image bounds")
)
