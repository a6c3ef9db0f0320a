package wdt

import "github.com/katalvlaran/wdt/cost"

// relax is Phase 2: drain the queue, committing each popped item unless
// it is stale, then pushing improved candidates for its in-bounds
// background, non-excluded neighbors. Mirrors dijkstra.runner.process's
// pop/stale-check/commit/relax shape.
func (e *engine) relax() {
	w, h := e.w, e.h

	for {
		item, ok := e.q.Pop()
		if !ok {
			return
		}

		i, c := item.Index, item.Cost
		if e.out.At(i) <= c {
			continue // stale: a cheaper path already committed this pixel
		}
		e.out.Set(i, c)

		x, y := e.out.Unravel(i)
		atLeft, atRight := x == 0, x == w-1
		atTop, atBottom := y == 0, y == h-1

		relaxInto := func(dx, dy int, into cost.Direction) {
			k := i + dy*w + dx
			if e.bin(k) || !e.mask(k) {
				return
			}

			cand := c + e.cost.GetCost(k, into)
			if cand < e.out.At(k) && cand < e.limit {
				e.q.Push(k, cand)
			}
		}

		if !atLeft {
			relaxInto(-1, 0, cost.Left)
		}
		if !atRight {
			relaxInto(1, 0, cost.Right)
		}
		if !atTop {
			relaxInto(0, -1, cost.Up)
		}
		if !atBottom {
			relaxInto(0, 1, cost.Down)
		}
		if e.conn == Conn8 {
			if !atLeft && !atTop {
				relaxInto(-1, -1, cost.UpLeft)
			}
			if !atRight && !atTop {
				relaxInto(1, -1, cost.UpRight)
			}
			if !atLeft && !atBottom {
				relaxInto(-1, 1, cost.DownLeft)
			}
			if !atRight && !atBottom {
				relaxInto(1, 1, cost.DownRight)
			}
		}
	}
}
