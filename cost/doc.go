// Package cost defines the directional cost oracle capability consumed
// by the weighted distance transform in package wdt.
//
// A cost oracle returns the edge cost for stepping into a destination
// pixel from one of the 8 unit directions. The oracle is oblivious to
// whether the neighbor is foreground, masked, or in-bounds — those
// checks are package wdt's responsibility. The oracle must be pure and
// return non-negative costs for the duration of one wdt.Run call;
// Dijkstra's relaxation argument, which wdt relies on, requires it.
//
// Direction replaces the original C++ implementation's compile-time
// template parameters <DX, DY> with a small runtime enum plus a
// precomputed offset table.
package cost
