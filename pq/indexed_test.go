package pq

import (
	"cmp"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// checkInvariant verifies heap order and position-index consistency.
func checkInvariant[P cmp.Ordered](t *testing.T, h *IndexedMinHeap[P]) {
	t.Helper()
	for k := 1; k < len(h.items); k++ {
		parent := (k - 1) / 2
		require.False(t, h.less(k, parent), "slot %d beats its parent %d", k, parent)
	}
	seen := 0
	for id, slot := range h.pos {
		if slot == Absent {
			continue
		}
		seen++
		require.Less(t, slot, len(h.items))
		require.Equal(t, id, h.items[slot].id, "pos[%d] points at a foreign slot", id)
	}
	require.Equal(t, len(h.items), seen)
}

type IndexedHeapSuite struct {
	suite.Suite
}

func TestIndexedHeapSuite(t *testing.T) {
	suite.Run(t, new(IndexedHeapSuite))
}

func (s *IndexedHeapSuite) TestNewPopulatesAllIDs() {
	h := New[int64](5, math.MaxInt64)
	s.Equal(5, h.Len())
	s.Equal(5, h.Cap())
	for id := 0; id < 5; id++ {
		s.True(h.Contains(id))
		k, ok := h.Key(id)
		s.True(ok)
		s.Equal(int64(math.MaxInt64), k)
	}
	s.False(h.Contains(-1))
	s.False(h.Contains(5))
	checkInvariant(s.T(), h)
}

func (s *IndexedHeapSuite) TestNegativeSize() {
	h := New[int64](-3, 0)
	s.Equal(0, h.Len())
	_, _, err := h.ExtractMin()
	s.ErrorIs(err, ErrEmpty)
}

func (s *IndexedHeapSuite) TestExtractMinEmpty() {
	h := New[int64](0, 0)
	id, _, err := h.ExtractMin()
	s.ErrorIs(err, ErrEmpty)
	s.Equal(Absent, id)
	_, _, err = h.Peek()
	s.ErrorIs(err, ErrEmpty)
}

func (s *IndexedHeapSuite) TestDecreaseKeyThenExtract() {
	h := New[int64](4, 100)
	s.True(h.DecreaseKey(2, 5))
	s.True(h.DecreaseKey(3, 1))
	checkInvariant(s.T(), h)

	id, key, err := h.ExtractMin()
	s.Require().NoError(err)
	s.Equal(3, id)
	s.Equal(int64(1), key)
	s.False(h.Contains(3))
	checkInvariant(s.T(), h)

	id, key, err = h.ExtractMin()
	s.Require().NoError(err)
	s.Equal(2, id)
	s.Equal(int64(5), key)
	checkInvariant(s.T(), h)
}

func (s *IndexedHeapSuite) TestDecreaseKeyNoOps() {
	h := New[int64](3, 10)
	s.False(h.DecreaseKey(1, 10), "equal key must be ignored")
	s.False(h.DecreaseKey(1, 11), "larger key must be ignored")
	s.False(h.DecreaseKey(7, 0), "out-of-range id must be ignored")
	s.False(h.DecreaseKey(-1, 0), "negative id must be ignored")

	id, _, err := h.ExtractMin()
	s.Require().NoError(err)
	s.False(h.DecreaseKey(id, 0), "extracted id must be ignored")
	s.False(h.Contains(id))
	s.Equal(2, h.Len())
	checkInvariant(s.T(), h)

	_, ok := h.Key(id)
	s.False(ok)
}

func (s *IndexedHeapSuite) TestTieBreakLowestID() {
	h := New[int64](6, 50)
	for _, id := range []int{5, 3, 4, 1} {
		s.True(h.DecreaseKey(id, 7))
	}
	var order []int
	for h.Len() > 0 {
		id, _, err := h.ExtractMin()
		s.Require().NoError(err)
		order = append(order, id)
	}
	s.Equal([]int{1, 3, 4, 5, 0, 2}, order)
}

func (s *IndexedHeapSuite) TestPeekMatchesExtract() {
	h := New[float64](3, 9.5)
	h.DecreaseKey(1, 0.25)
	pid, pkey, err := h.Peek()
	s.Require().NoError(err)
	id, key, err := h.ExtractMin()
	s.Require().NoError(err)
	s.Equal(pid, id)
	s.Equal(pkey, key)
}

// TestRandomSequences interleaves DecreaseKey and ExtractMin calls and checks
// the invariant after every mutation. Each extraction must be the minimum of
// what is still queued at that moment.
func TestRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		h := New[int64](n, math.MaxInt64)
		ref := make(map[int]int64, n)
		for id := 0; id < n; id++ {
			ref[id] = math.MaxInt64
		}

		for h.Len() > 0 {
			if rng.Intn(3) > 0 {
				id := rng.Intn(n)
				key := int64(rng.Intn(1000))
				changed := h.DecreaseKey(id, key)
				cur, queued := ref[id]
				want := queued && key < cur
				require.Equal(t, want, changed)
				if changed {
					ref[id] = key
				}
			} else {
				id, key, err := h.ExtractMin()
				require.NoError(t, err)
				require.Equal(t, ref[id], key)
				for other, k := range ref {
					require.True(t, key < k || (key == k && id <= other),
						"extracted (%d,%d) but (%d,%d) was smaller", id, key, other, k)
				}
				delete(ref, id)
			}
			checkInvariant(t, h)
		}
		require.Empty(t, ref)
	}
}
