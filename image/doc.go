// Package image provides a dense, generic 2D grid with strided linear
// indexing and (x,y)↔index conversion.
//
// Image[T] is the storage primitive the weighted distance transform in
// package wdt reads and writes. It owns its backing slice; width and
// height are fixed for the lifetime of an Image. Elements are addressed
// both as a linear index 0 ≤ i < W·H and as an (x, y) pair, related by
//
//	i = y*W + x
//
// Conversion between the two is exposed as the pure functions Ravel and
// Unravel so callers can compute indices without holding an Image.
//
// Image carries no domain semantics of its own — no notion of
// foreground, background, or cost. Those live in packages cost and wdt.
package image
