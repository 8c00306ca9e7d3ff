package gomoryhu

import (
	"math"

	"github.com/dcrane/gokcut/core"
)

// Tree is a Gomory–Hu tree: an undirected weighted graph on the same vertex
// set as the source graph, plus the root vertex it was built from (only
// meaningful for the Gusfield variant; the classical variant sets it to the
// empty string).
type Tree struct {
	g    *core.Graph
	root string
}

// Graph returns the underlying tree as a core.Graph. Callers must not
// mutate it.
func (t *Tree) Graph() *core.Graph {
	return t.g
}

// Root returns the vertex the tree was rooted at, or "" if the builder that
// produced it has no notion of a root.
func (t *Tree) Root() string {
	return t.root
}

// Vertices returns the tree's vertex ids in sorted order.
func (t *Tree) Vertices() []string {
	return t.g.Vertices()
}

// Edges returns the tree's edges in sorted-by-id order.
func (t *Tree) Edges() []*core.Edge {
	return t.g.Edges()
}

// MinWeightOnPath returns the minimum edge weight on the unique path between
// x and y in the tree. By the Gomory–Hu property this equals the max-flow
// value between x and y in the graph the tree was built from.
func (t *Tree) MinWeightOnPath(x, y string) (int64, error) {
	if !t.g.HasVertex(x) || !t.g.HasVertex(y) {
		return 0, ErrVertexNotFound
	}
	if x == y {
		return math.MaxInt64, nil
	}

	type step struct {
		vertex    string
		bottleneck int64
	}

	visited := map[string]bool{x: true}
	queue := []step{{vertex: x, bottleneck: math.MaxInt64}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.vertex == y {
			return cur.bottleneck, nil
		}

		neighbors, err := t.g.Neighbors(cur.vertex)
		if err != nil {
			return 0, err
		}
		for _, e := range neighbors {
			next := e.To
			if next == cur.vertex {
				next = e.From
			}
			if visited[next] {
				continue
			}
			visited[next] = true

			b := cur.bottleneck
			if e.Weight < b {
				b = e.Weight
			}
			queue = append(queue, step{vertex: next, bottleneck: b})
		}
	}

	return 0, ErrVertexNotFound
}
