// Package pqueue provides a generic min-priority queue over (index,
// cost) pairs, ordered by cost ascending.
//
// Queue is the caller-supplied priority queue the weighted distance
// transform in package wdt requires: wdt.Run takes exclusive ownership
// of it for the duration of one call and leaves it empty on return.
//
// Queue uses the "lazy decrease-key" pattern: pushing a new (index,
// cost) pair for an index already present is cheaper than searching for
// and updating the existing entry, at the cost of occasional stale pops
// which the caller discards. This mirrors dijkstra.nodePQ's design,
// generalized from (vertex ID, int64 distance) pairs to (pixel index,
// float64 cost) pairs.
package pqueue
