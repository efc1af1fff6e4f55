// SPDX-License-Identifier: MIT
// Package: trafficpath/pq
//
// indexed.go - binary min-heap over dense integer ids with a position index.
//
// Layout:
//   • items[k] is the entry stored in heap slot k.
//   • pos[id] is the slot currently holding id, or Absent once extracted.
//   • parent(k) = (k-1)/2, children 2k+1 and 2k+2.
//
// Ordering is (key, id): equal keys resolve to the lower id, which makes the
// extraction sequence reproducible across runs.

package pq

import (
	"cmp"
	"errors"
)

// Absent marks an id that is not (or no longer) stored in the heap.
const Absent = -1

// ErrEmpty is returned by ExtractMin when the heap holds no entries.
var ErrEmpty = errors.New("pq: heap is empty")

// entry pairs an id with its current key.
type entry[P cmp.Ordered] struct {
	id  int
	key P
}

// IndexedMinHeap is a priority queue of ids 0..n-1 keyed by P, supporting
// DecreaseKey by id in O(log n). It is not safe for concurrent use.
type IndexedMinHeap[P cmp.Ordered] struct {
	items []entry[P]
	pos   []int
}

// New returns a heap holding every id in [0, n) with key initial.
// n < 0 is treated as 0.
//
// With all keys equal the id order already satisfies the (key, id) heap
// ordering, so no heapify pass is needed.
// Complexity: O(n) time and space.
func New[P cmp.Ordered](n int, initial P) *IndexedMinHeap[P] {
	if n < 0 {
		n = 0
	}
	h := &IndexedMinHeap[P]{
		items: make([]entry[P], n),
		pos:   make([]int, n),
	}
	for id := 0; id < n; id++ {
		h.items[id] = entry[P]{id: id, key: initial}
		h.pos[id] = id
	}

	return h
}

// Len returns the number of ids still in the heap.
func (h *IndexedMinHeap[P]) Len() int { return len(h.items) }

// Cap returns the size of the id universe [0, Cap()).
func (h *IndexedMinHeap[P]) Cap() int { return len(h.pos) }

// Contains reports whether id is still queued.
// Complexity: O(1).
func (h *IndexedMinHeap[P]) Contains(id int) bool {
	return id >= 0 && id < len(h.pos) && h.pos[id] != Absent
}

// Key returns the current key of id and whether id is queued.
func (h *IndexedMinHeap[P]) Key(id int) (P, bool) {
	if !h.Contains(id) {
		var zero P
		return zero, false
	}

	return h.items[h.pos[id]].key, true
}

// Peek returns the minimum entry without removing it.
func (h *IndexedMinHeap[P]) Peek() (int, P, error) {
	if len(h.items) == 0 {
		var zero P
		return Absent, zero, ErrEmpty
	}

	return h.items[0].id, h.items[0].key, nil
}

// ExtractMin removes and returns the entry with the smallest key.
// The last entry takes the root slot and sinks into place; the extracted id
// is marked Absent. Returns ErrEmpty on an empty heap.
// Complexity: O(log n).
func (h *IndexedMinHeap[P]) ExtractMin() (int, P, error) {
	n := len(h.items)
	if n == 0 {
		var zero P
		return Absent, zero, ErrEmpty
	}

	root := h.items[0]
	last := h.items[n-1]
	h.items = h.items[:n-1]
	h.pos[root.id] = Absent

	if n > 1 {
		h.items[0] = last
		h.pos[last.id] = 0
		h.down(0)
	}

	return root.id, root.key, nil
}

// DecreaseKey lowers the key of id to key and restores heap order.
// It is a no-op returning false when id is not queued (already extracted or
// out of range) or key is not strictly smaller than the current key.
// Complexity: O(log n).
func (h *IndexedMinHeap[P]) DecreaseKey(id int, key P) bool {
	if !h.Contains(id) {
		return false
	}
	k := h.pos[id]
	if !cmp.Less(key, h.items[k].key) {
		return false
	}
	h.items[k].key = key
	h.up(k)

	return true
}

// less orders slots by key, then by id.
func (h *IndexedMinHeap[P]) less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c < 0
	}

	return a.id < b.id
}

func (h *IndexedMinHeap[P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

// up bubbles slot k towards the root while it beats its parent.
func (h *IndexedMinHeap[P]) up(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if !h.less(k, parent) {
			return
		}
		h.swap(k, parent)
		k = parent
	}
}

// down sinks slot k until both children are not smaller.
func (h *IndexedMinHeap[P]) down(k int) {
	n := len(h.items)
	for {
		smallest := k
		left, right := 2*k+1, 2*k+2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == k {
			return
		}
		h.swap(k, smallest)
		k = smallest
	}
}
