package wdt

import (
	"github.com/katalvlaran/wdt/cost"
	"github.com/katalvlaran/wdt/image"
	"github.com/katalvlaran/wdt/pqueue"
)

// Run computes the weighted distance transform of bin/mask/c into out,
// using conn for neighbor connectivity. On return, out holds 0 at every
// foreground pixel, +Inf at every excluded pixel and every background
// pixel not reached within the configured limit, and the minimum path
// cost at every other background pixel. q is left empty.
//
// Preconditions: out's width and height must both be >= 2; bin, mask,
// and c must be pure and mutually consistent for the duration of the
// call. Run returns ErrDimensionTooSmall if the size precondition is
// violated; it does not validate that bin and mask agree on any pixel
// (a pixel for which bin is true and mask is false is treated as
// foreground, matching is_compute's precedence in the reference
// implementation).
//
// Run is synchronous and touches no state beyond its arguments. A
// caller running transforms concurrently must give each call its own
// out and q.
func Run(out *image.Image[float64], bin ForegroundFunc, mask IncludedFunc, c cost.Oracle, q *pqueue.Queue, conn Connectivity, opts ...Option) error {
	size := out.Size()
	if size.Width < 2 || size.Height < 2 {
		return ErrDimensionTooSmall
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &engine{
		out:   out,
		bin:   bin,
		mask:  mask,
		cost:  c,
		q:     q,
		conn:  conn,
		limit: cfg.Limit,
		w:     size.Width,
		h:     size.Height,
	}

	e.seed()
	e.relax()

	return nil
}

// engine holds the mutable state of a single Run call, the same role
// dijkstra.runner plays for Dijkstra.
type engine struct {
	out   *image.Image[float64]
	bin   ForegroundFunc
	mask  IncludedFunc
	cost  cost.Oracle
	q     *pqueue.Queue
	conn  Connectivity
	limit float64
	w, h  int
}
