// Package wdt's module is a small, zero-surprise toolkit for turning a
// touch or stylus digitizer heatmap into per-pixel distances from
// contact — the weighted distance transform at its core, plus the
// image, cost and priority-queue plumbing it is built from.
//
// 🚀 What's in here?
//
//	A pure Go library that brings together:
//		• Image: a generic dense 2D grid with linear/(x,y) indexing
//		• Cost: 8-direction cost oracles, from unit-weight to heatmap-derived fields
//		• Pqueue: a lazy-decrease-key min-priority queue
//		• Wdt: the two-phase seed/relax weighted distance transform engine
//		• Heatmap: adapters from a raw reading to wdt's foreground/inclusion/cost inputs
//
// ✨ Why this shape?
//
//   - Minimal API — one entry point, wdt.Run, configured by functional options
//   - Pure Go — no cgo, no hidden deps beyond testify for testing
//   - Generic where it earns its keep (image.Image[T]), concrete where it
//     doesn't (float64 costs throughout the rest)
//
// Subpackages:
//
//	cost/    — direction enum and cost.Oracle implementations
//	heatmap/ — raw-reading adapters: thresholding, region masks, gradient cost
//	image/   — the Image[T] grid container
//	pqueue/  — the min-priority queue wdt.Run drains
//	wdt/     — Run and its Connectivity/Options
//
// Quick sketch:
//
//	out, _ := image.New[float64](w, h)
//	q := pqueue.NewQueue(w * h)
//	err := wdt.Run(out, isContact, alwaysIncluded, cost.UnitOracle{}, q, wdt.Conn8)
//
// See the wdt and heatmap packages' Example functions for runnable
// end-to-end scenarios.
package wdt
