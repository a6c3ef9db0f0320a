// Package wdt implements the weighted distance transform: a
// Dijkstra-like single-source-multiple-target shortest-path computation
// over a dense 2D image grid.
//
// Given a foreground predicate (sources, distance 0), an exclusion
// predicate (pixels that do not participate in propagation), and a
// directional cost oracle, Run computes for every background pixel the
// minimum accumulated cost of a path to the nearest foreground pixel
// under 4- or 8-connectivity, subject to an exclusive upper cost bound.
//
// Run is a two-phase algorithm:
//
//   - Phase 1 (seeding) traverses every pixel once in row-major order.
//     Foreground pixels are set to 0. Background pixels adjacent to a
//     foreground pixel are pushed onto the queue with the cost of that
//     first step already accounted for — this avoids ever enqueuing a
//     foreground pixel.
//   - Phase 2 (relaxation) repeatedly pops the minimum-cost queue item,
//     discards it if stale (out[i] already ≤ the popped cost), commits
//     it otherwise, and pushes improved candidates for its neighbors.
//
// Run never fails on well-formed input — it returns an error only for
// the one precondition this implementation checks explicitly,
// ErrDimensionTooSmall, rather than leaving a 2x2 minimum-size
// violation as undefined behavior.
//
// Run is synchronous, single-threaded, and touches no state beyond its
// arguments: out (written), bin/mask/cost (read), and q (drained to
// empty on return). Parallel callers must use independent (out, q) pairs
// per goroutine.
package wdt
