package wdt

import (
	"math"

	"github.com/katalvlaran/wdt/cost"
)

// seed is Phase 1: a single row-major pass over every pixel. Foreground
// pixels are finalized at 0. Background pixels get +Inf plus, if at
// least one foreground neighbor is in bounds, an initial queue entry
// for the cheapest such first step — so Phase 2 never has to enqueue a
// foreground pixel at all.
//
// The 9 boundary cases of the reference implementation (4 corners, 4
// edges, interior) collapse here into one pass whose neighbor set is
// pruned per pixel by the same atLeft/atRight/atTop/atBottom guards
// Phase 2 already needs for relaxation.
func (e *engine) seed() {
	w, h := e.w, e.h

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x

			if e.bin(i) {
				e.out.Set(i, 0)
				continue
			}

			e.out.Set(i, math.Inf(1))
			if !e.mask(i) {
				continue
			}

			atLeft, atRight := x == 0, x == w-1
			atTop, atBottom := y == 0, y == h-1

			c := math.Inf(1)
			consider := func(dx, dy int, into cost.Direction) {
				j := i + dy*w + dx
				if e.bin(j) {
					if v := e.cost.GetCost(i, into); v < c {
						c = v
					}
				}
			}

			// into is the direction of travel from the foreground
			// neighbor j into i, the opposite of the offset used to
			// reach j from i.
			if !atLeft {
				consider(-1, 0, cost.Right)
			}
			if !atRight {
				consider(1, 0, cost.Left)
			}
			if !atTop {
				consider(0, -1, cost.Down)
			}
			if !atBottom {
				consider(0, 1, cost.Up)
			}
			if e.conn == Conn8 {
				if !atLeft && !atTop {
					consider(-1, -1, cost.DownRight)
				}
				if !atRight && !atTop {
					consider(1, -1, cost.DownLeft)
				}
				if !atLeft && !atBottom {
					consider(-1, 1, cost.UpRight)
				}
				if !atRight && !atBottom {
					consider(1, 1, cost.UpLeft)
				}
			}

			if c < e.limit {
				e.q.Push(i, c)
			}
		}
	}
}
