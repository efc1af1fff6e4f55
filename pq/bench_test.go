package pq_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/trafficpath/pq"
)

func BenchmarkDecreaseKeyExtract(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int63n(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pq.New[int64](n, math.MaxInt64)
		for id, k := range keys {
			h.DecreaseKey(id, k)
		}
		for h.Len() > 0 {
			_, _, _ = h.ExtractMin()
		}
	}
}
