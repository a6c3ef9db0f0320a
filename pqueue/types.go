package pqueue

// Item is a single (pixel index, cost) entry stored in a Queue.
type Item struct {
	// Index is the pixel's linear index into the image being relaxed.
	Index int
	// Cost is the item's priority; lower pops first.
	Cost float64
}

// heapSlice implements container/heap.Interface over []Item, ordered by
// Cost ascending. It backs Queue; callers use Queue's Push/Pop wrappers
// instead of the raw heap.Interface methods.
type heapSlice []Item

func (h heapSlice) Len() int { return len(h) }

func (h heapSlice) Less(i, j int) bool { return h[i].Cost < h[j].Cost }

func (h heapSlice) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *heapSlice) Push(x interface{}) {
	*h = append(*h, x.(Item))
}

func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
