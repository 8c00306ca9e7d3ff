package flow

import (
	"github.com/dcrane/gokcut/bfs"
	"github.com/dcrane/gokcut/core"
)

// MinCut wraps a max-flow computation between a fixed source and sink and
// exposes the induced minimum s-t cut: the flow value and, for any vertex,
// whether it lies on the source side of the cut.
//
// The source side is the set of vertices still reachable from source in the
// residual network once the flow is maximal; every edge crossing from that
// set to its complement is saturated and together they form a minimum cut
// (max-flow min-cut duality).
type MinCut struct {
	g           *core.Graph
	source      string
	sink        string
	opts        FlowOptions
	flowValue   float64
	sourceSide  map[string]bool
	run         bool
}

// NewMinCut prepares a MinCut computation for g between source and sink.
// Run must be called before FlowValue or InSourceSide are meaningful.
func NewMinCut(g *core.Graph, source, sink string, opts FlowOptions) *MinCut {
	opts.normalize()

	return &MinCut{g: g, source: source, sink: sink, opts: opts}
}

// Run computes the maximum flow via Dinic's algorithm and then determines
// the source-side reachable set in the resulting residual network.
//
// Complexity: the cost of Dinic, plus O(V+E) for the reachability pass.
func (m *MinCut) Run() error {
	maxFlow, residual, err := Dinic(m.g, m.source, m.sink, m.opts)
	if err != nil {
		return err
	}
	m.flowValue = maxFlow

	// BFS requires an unweighted graph; the residual already carries only
	// edges with strictly positive remaining capacity, so an unweighted
	// view of it is exactly the reachability graph we need.
	unweighted := core.UnweightedView(residual)
	result, err := bfs.BFS(unweighted, m.source, bfs.WithContext(m.opts.Ctx))
	if err != nil {
		return err
	}

	side := make(map[string]bool, len(result.Order))
	for _, id := range result.Order {
		side[id] = true
	}
	m.sourceSide = side
	m.run = true

	return nil
}

// FlowValue returns the maximum flow value found by Run. It returns 0 if
// Run has not yet been called or failed.
func (m *MinCut) FlowValue() float64 {
	return m.flowValue
}

// InSourceSide reports whether vertex v lies on the source side of the
// minimum cut, i.e. whether it remains reachable from source in the
// residual network after Run. Vertices absent from the original graph, and
// any query before Run succeeds, report false.
func (m *MinCut) InSourceSide(v string) bool {
	if !m.run {
		return false
	}

	return m.sourceSide[v]
}
