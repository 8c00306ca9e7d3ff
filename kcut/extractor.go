package kcut

import (
	"container/heap"

	"github.com/dcrane/gokcut/core"
	"github.com/dcrane/gokcut/dfs"
	"github.com/dcrane/gokcut/ghlog"
	"github.com/dcrane/gokcut/gomoryhu"
)

// treeEdge is the payload the selection heap orders on.
type treeEdge struct {
	id     string
	from   string
	to     string
	weight int64
}

// lightestHeap is a bounded max-heap: its root is always the heaviest edge
// currently kept, so a new lighter candidate can evict it in O(log k).
type lightestHeap []treeEdge

func (h lightestHeap) Len() int            { return len(h) }
func (h lightestHeap) Less(i, j int) bool  { return h[i].weight > h[j].weight }
func (h lightestHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *lightestHeap) Push(x interface{}) { *h = append(*h, x.(treeEdge)) }
func (h *lightestHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// selectKMinusOne scans every tree edge once through a bounded max-heap of
// capacity k-1, keeping the k-1 lightest encountered. O(|T| log k).
func selectKMinusOne(t *gomoryhu.Tree, k int) ([]treeEdge, error) {
	n := len(t.Vertices())
	if k < 2 || k > n {
		return nil, ErrKInvalid
	}

	capacity := k - 1
	h := make(lightestHeap, 0, capacity)

	for _, e := range t.Edges() {
		cand := treeEdge{id: e.ID, from: e.From, to: e.To, weight: e.Weight}
		if len(h) < capacity {
			heap.Push(&h, cand)
			continue
		}
		if capacity > 0 && cand.weight < h[0].weight {
			heap.Pop(&h)
			heap.Push(&h, cand)
		}
	}

	return h, nil
}

// MinKCutValue returns the minimum total capacity of edges whose removal
// splits the graph the tree t was built from into exactly k connected
// components: the sum of the k-1 smallest tree-edge weights.
func MinKCutValue(t *gomoryhu.Tree, k int, logger *ghlog.Logger) (int64, error) {
	timer := ghlog.NewTimer()

	selected, err := selectKMinusOne(t, k)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, e := range selected {
		sum += e.weight
	}

	logger.Add("min_k_cut_value_time", timer.Tick().Seconds())

	return sum, nil
}

// MinKCutColoring returns a total function coloring every tree vertex with
// one of k labels in {1, ..., k}: the k-1 lightest tree edges are removed
// and each resulting connected component is assigned a fresh label. Label
// assignment order is not part of the contract.
func MinKCutColoring(t *gomoryhu.Tree, k int, logger *ghlog.Logger) (map[string]int, error) {
	total := ghlog.NewTimer()

	findTimer := ghlog.NewTimer()
	selected, err := selectKMinusOne(t, k)
	if err != nil {
		return nil, err
	}
	removed := make(map[string]bool, len(selected))
	for _, e := range selected {
		removed[e.id] = true
	}
	logger.Add("min_k_cut_map_time_find_min_flows", findTimer.Tick().Seconds())

	dfsTimer := ghlog.NewTimer()
	pruned := core.NewGraph(core.WithWeighted())
	for _, v := range t.Vertices() {
		_ = pruned.AddVertex(v)
	}
	for _, e := range t.Edges() {
		if removed[e.ID] {
			continue
		}
		if _, err := pruned.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	colors := make(map[string]int, len(t.Vertices()))
	label := 0
	for _, v := range t.Vertices() {
		if _, done := colors[v]; done {
			continue
		}
		label++
		res, err := dfs.DFS(pruned, v)
		if err != nil {
			return nil, err
		}
		for id := range res.Visited {
			colors[id] = label
		}
	}
	logger.Add("min_k_cut_map_time_dfs", dfsTimer.Tick().Seconds())
	logger.Add("min_k_cut_map_time_total", total.Tick().Seconds())

	return colors, nil
}
