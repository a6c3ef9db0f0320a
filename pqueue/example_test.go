package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/wdt/pqueue"
)

// ExampleQueue demonstrates that items pop in ascending cost order
// regardless of push order.
func ExampleQueue() {
	q := pqueue.NewQueue(0)
	q.Push(10, 4.5)
	q.Push(20, 1.0)
	q.Push(30, 2.5)

	for q.Len() > 0 {
		item, _ := q.Pop()
		fmt.Printf("index=%d cost=%.1f\n", item.Index, item.Cost)
	}

	// Output:
	// index=20 cost=1.0
	// index=30 cost=2.5
	// index=10 cost=4.5
}
