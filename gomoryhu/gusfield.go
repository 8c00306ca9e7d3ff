package gomoryhu

import (
	"math"

	"github.com/dcrane/gokcut/core"
	"github.com/dcrane/gokcut/flow"
	"github.com/dcrane/gokcut/ghlog"
)

// sentinel marks "no parent" (the root) in the predecessor map.
const sentinel = ""

// BuildGusfield constructs a Gomory–Hu tree with Gusfield's algorithm: a
// single arbitrary root, n-1 max-flow calls, and two relabeling rules that
// keep the predecessor map a valid tree encoding after every step.
//
// Complexity: exactly n-1 max-flow calls, each the cost of Dinic's algorithm
// on g.
func BuildGusfield(g *core.Graph, opts Options) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts.normalize()

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}

	total := ghlog.NewTimer()

	root := opts.Root
	if root == "" || !g.HasVertex(root) {
		root = vertices[0]
	}

	out := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		_ = out.AddVertex(v)
	}
	if len(vertices) == 1 {
		return &Tree{g: out, root: root}, nil
	}

	p := make(map[string]string, len(vertices))
	fl := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		p[v] = root
	}
	p[root] = sentinel
	fl[root] = math.MaxInt64

	var minCutSeconds, relabelSeconds float64

	for _, s := range vertices {
		if s == root {
			continue
		}
		t := p[s]

		mcTimer := ghlog.NewTimer()
		mc := flow.NewMinCut(g, s, t, opts.Flow)
		if err := mc.Run(); err != nil {
			return nil, err
		}
		minCutSeconds += mcTimer.Tick().Seconds()

		relTimer := ghlog.NewTimer()
		lambda := int64(math.Round(mc.FlowValue()))
		fl[s] = lambda

		// Relabel rule A: children of t whose witness side is now s move
		// under s.
		for _, i := range vertices {
			if i == s {
				continue
			}
			if mc.InSourceSide(i) && p[i] == t {
				p[i] = s
			}
		}

		// Relabel rule B: re-parent s above t when t itself sits on the s
		// side of p[t]'s cut.
		if pt := p[t]; pt != sentinel && mc.InSourceSide(pt) {
			oldFlT := fl[t]
			p[s] = p[t]
			p[t] = s
			fl[s] = oldFlT
			fl[t] = lambda
		}
		relabelSeconds += relTimer.Tick().Seconds()
	}

	for _, v := range vertices {
		if v == root {
			continue
		}
		if _, err := out.AddEdge(v, p[v], fl[v]); err != nil {
			return nil, err
		}
	}

	opts.Logger.Add("gh_time_min_cut", minCutSeconds)
	opts.Logger.Add("gh_time_relabel", relabelSeconds)
	opts.Logger.Add("gh_time_total", total.Tick().Seconds())

	return &Tree{g: out, root: root}, nil
}
