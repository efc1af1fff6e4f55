package bfs

import (
	"errors"

	"github.com/katalvlaran/trafficpath/core"
)

// errFound stops Connected once the target is visited.
var errFound = errors.New("bfs: target reached")

// Components labels every junction with the index of its connected
// component. Components are numbered 0,1,... in order of their lowest id.
// Returns the labels and the component count; a nil graph has none.
// Complexity: O(V+E).
func Components(g *core.Graph) ([]int, int) {
	if g == nil {
		return nil, 0
	}
	n := g.VertexCount()
	label := make([]int, n)
	for i := range label {
		label[i] = Unreached
	}

	count := 0
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if label[s] != Unreached {
			continue
		}
		label[s] = count
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := range g.Neighbors(u) {
				if label[v] == Unreached {
					label[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return label, count
}

// Connected reports whether u and v lie in the same component. Out of range
// ids are never connected.
func Connected(g *core.Graph, u, v int) bool {
	if g == nil || !g.Valid(u) || !g.Valid(v) {
		return false
	}
	_, err := BFS(g, u, WithOnVisit(func(id, _ int) error {
		if id == v {
			return errFound
		}
		return nil
	}))

	return errors.Is(err, errFound)
}
