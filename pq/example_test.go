package pq_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trafficpath/pq"
)

// ExampleIndexedMinHeap shows the settle loop shape used by shortest-path
// searches: every id starts at "infinity" and keys only ever decrease.
func ExampleIndexedMinHeap() {
	h := pq.New[int64](4, math.MaxInt64)
	h.DecreaseKey(2, 0)
	h.DecreaseKey(0, 7)
	h.DecreaseKey(3, 7)

	for h.Len() > 0 {
		id, key, _ := h.ExtractMin()
		if key == math.MaxInt64 {
			fmt.Println(id, "unreached")
			continue
		}
		fmt.Println(id, key)
	}
	// Output:
	// 2 0
	// 0 7
	// 3 7
	// 1 unreached
}
