// Package preprocess turns an arbitrary undirected weighted graph into the
// simple, connected graph the Gomory–Hu builders require: self-loops
// removed, parallel edges collapsed to one arbitrary survivor, and
// disconnected components stitched together with synthetic bridge edges.
package preprocess

import (
	"github.com/dcrane/gokcut/bfs"
	"github.com/dcrane/gokcut/core"
)

// SyntheticBridgeWeight is the capacity assigned to the edges Normalize adds
// to connect otherwise-unreachable components.
const SyntheticBridgeWeight = 42

// Normalize returns a new graph derived from g: self-loops are dropped,
// parallel edges between the same pair of endpoints are collapsed keeping
// one arbitrary representative (the first encountered in g.Edges() order),
// and then synthetic edges of weight SyntheticBridgeWeight are added from a
// fixed anchor vertex (the lexicographically first vertex id) to one vertex
// of every other connected component, until the result is connected.
//
// g is never mutated. The returned graph is weighted and permits
// multi-edges, since downstream contraction in the classical Gomory–Hu
// variant can legitimately reintroduce parallel edges.
func Normalize(g *core.Graph) *core.Graph {
	out := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, v := range g.Vertices() {
		_ = out.AddVertex(v)
	}

	seen := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // drop self-loop
		}
		a, b := e.From, e.To
		if a > b {
			a, b = b, a
		}
		key := [2]string{a, b}
		if seen[key] {
			continue // keep only the first-seen representative
		}
		seen[key] = true
		_, _ = out.AddEdge(e.From, e.To, e.Weight)
	}

	connectComponents(out)

	return out
}

// connectComponents adds SyntheticBridgeWeight edges from the anchor vertex
// (first in sorted id order) to one vertex of every component not already
// reachable from it, until g is connected.
func connectComponents(g *core.Graph) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return
	}
	anchor := vertices[0]
	visited := make(map[string]bool, len(vertices))

	markReachableFrom := func(start string) {
		// bfs.BFS rejects weighted graphs, so traverse an unweighted view;
		// topology, not capacity, is all connectivity needs.
		res, err := bfs.BFS(core.UnweightedView(g), start)
		if err != nil {
			return
		}
		for _, id := range res.Order {
			visited[id] = true
		}
	}
	markReachableFrom(anchor)

	for _, v := range vertices {
		if visited[v] {
			continue
		}
		_, _ = g.AddEdge(anchor, v, SyntheticBridgeWeight)
		markReachableFrom(v)
	}
}
