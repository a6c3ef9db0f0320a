package heatmap

import (
	"github.com/katalvlaran/wdt/image"
	"github.com/katalvlaran/wdt/wdt"
)

// Rect describes a region of interest within a heatmap image, with MaxX
// and MaxY exclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether (x, y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// NewRectIncluded returns a wdt.IncludedFunc that restricts propagation
// to the interior of r — a region-of-interest mask, the opposite sense
// of NewRectExcluded. Returns ErrRectOutOfBounds if r is empty or
// extends outside size.
func NewRectIncluded(size image.Size, r Rect) (wdt.IncludedFunc, error) {
	if err := r.checkBounds(size); err != nil {
		return nil, err
	}

	w := size.Width
	return func(i int) bool {
		x, y := image.Unravel(w, i)
		return r.Contains(x, y)
	}, nil
}

// NewRectExcluded returns a wdt.IncludedFunc that excludes r — e.g. a
// masked-off bezel area on a real digitizer — and includes every other
// pixel in an image of the given size. Returns ErrRectOutOfBounds if r
// is empty or extends outside size.
func NewRectExcluded(size image.Size, r Rect) (wdt.IncludedFunc, error) {
	if err := r.checkBounds(size); err != nil {
		return nil, err
	}

	w := size.Width
	return func(i int) bool {
		x, y := image.Unravel(w, i)
		return !r.Contains(x, y)
	}, nil
}

func (r Rect) checkBounds(size image.Size) error {
	if r.MinX < 0 || r.MinY < 0 ||
		r.MaxX > size.Width || r.MaxY > size.Height ||
		r.MinX >= r.MaxX || r.MinY >= r.MaxY {
		return ErrRectOutOfBounds
	}
	return nil
}
