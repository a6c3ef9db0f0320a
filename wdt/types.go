package wdt

import "math"

// Connectivity selects the neighbor set Run considers at each pixel.
type Connectivity int

const (
	// Conn4 considers only the 4 axial neighbors: left, right, up, down.
	Conn4 Connectivity = iota
	// Conn8 additionally considers the 4 diagonal neighbors.
	Conn8
)

// ForegroundFunc reports whether pixel i is a source. Run writes 0 to
// every pixel for which this returns true and never enqueues it.
type ForegroundFunc func(i int) bool

// IncludedFunc reports whether pixel i participates in propagation. A
// false return excludes a background pixel: it is never seeded, never a
// relaxation target, and Run leaves it at +Inf. A pixel for which
// ForegroundFunc returns true is treated as foreground regardless.
type IncludedFunc func(i int) bool

// Options configures a Run call. The zero value is not valid; use
// DefaultOptions.
type Options struct {
	// Limit is an exclusive upper bound on propagated cost. A candidate
	// cost c is only accepted if c < Limit.
	Limit float64
}

// Option is a functional option for Run, following the same pattern as
// dijkstra.Option.
type Option func(*Options)

// DefaultOptions returns the default Options: Limit is +Inf, so no
// pixel is excluded on cost grounds alone.
func DefaultOptions() Options {
	return Options{Limit: math.Inf(1)}
}

// WithLimit sets an exclusive upper bound on propagated cost. The
// returned Option panics when applied if limit is not positive.
func WithLimit(limit float64) Option {
	return func(o *Options) {
		if limit <= 0 {
			panic(ErrBadLimit.Error())
		}
		o.Limit = limit
	}
}
