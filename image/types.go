package image

// Size describes the dimensions of an Image: Width and Height in pixels.
// Span reports the total element count, W*H.
type Size struct {
	Width  int
	Height int
}

// Span returns the total number of elements in a grid of this Size.
func (s Size) Span() int {
	return s.Width * s.Height
}

// Image is a dense, row-major 2D grid of T. The backing storage is a
// single contiguous slice of length W*H; row stride is always W.
//
// Image owns its storage. Size is immutable for the lifetime of an
// Image; element values are mutable via Set.
type Image[T any] struct {
	size Size
	data []T
}
