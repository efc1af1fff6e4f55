// Package pq provides IndexedMinHeap, a generic binary min-heap over a dense
// id universe [0, n) that supports decreasing the key of a specific id.
//
// Unlike container/heap with lazy duplicates, every id occupies exactly one
// slot and a position index maps id → slot, so DecreaseKey runs in O(log n)
// and extracted ids can be recognised in O(1):
//
//	h := pq.New[int64](n, math.MaxInt64)
//	h.DecreaseKey(src, 0)
//	for h.Len() > 0 {
//	    u, d, _ := h.ExtractMin()
//	    ...
//	}
//
// Complexity:
//
//   - New:         O(n)
//   - ExtractMin:  O(log n)
//   - DecreaseKey: O(log n)
//   - Contains:    O(1)
//
// Ties between equal keys are broken by the lower id.
package pq
