package gomoryhu

import (
	"fmt"
	"math"
	"sort"

	"github.com/dcrane/gokcut/core"
	"github.com/dcrane/gokcut/flow"
	"github.com/dcrane/gokcut/ghlog"
)

// BuildClassical constructs a Gomory–Hu tree with the original supernode
// contraction algorithm: starting from one supernode holding all of V, each
// round picks a supernode, cuts it in two via a single max-flow call on a
// graph where every other current supernode is contracted to one
// representative vertex, and re-threads the tree around the split.
//
// The policy for picking s and t within a popped supernode is the first two
// members in sorted order, a deterministic stand-in for "as stored" that
// makes results reproducible regardless of map iteration order.
func BuildClassical(g *core.Graph, opts Options) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts.normalize()

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}

	total := ghlog.NewTimer()

	out := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		_ = out.AddVertex(v)
	}
	if len(vertices) == 1 {
		return &Tree{g: out}, nil
	}

	members := map[string][]string{"X0": append([]string(nil), vertices...)}
	sort.Strings(members["X0"])
	adj := map[string]map[string]int64{"X0": {}}

	var worklist []string
	if len(members["X0"]) >= 2 {
		worklist = append(worklist, "X0")
	}
	nextID := 1

	var contractionSeconds float64

	for len(worklist) > 0 {
		x := worklist[0]
		worklist = worklist[1:]

		mem := members[x]
		s, t := mem[0], mem[1]

		ctrTimer := ghlog.NewTimer()

		vertexMap := make(map[string]string, len(vertices))
		for _, v := range mem {
			vertexMap[v] = v
		}
		repOf := make(map[string]string, len(adj[x]))
		for y := range adj[x] {
			comp := collectComponent(adj, x, y)
			union := make([]string, 0)
			for _, supID := range comp {
				union = append(union, members[supID]...)
			}
			sort.Strings(union)
			rep := union[0]
			for _, v := range union {
				vertexMap[v] = rep
			}
			repOf[y] = rep
		}

		gp := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
		seenVertex := make(map[string]bool, len(vertexMap))
		for _, mapped := range vertexMap {
			if !seenVertex[mapped] {
				seenVertex[mapped] = true
				_ = gp.AddVertex(mapped)
			}
		}
		for _, e := range g.Edges() {
			mu, mv := vertexMap[e.From], vertexMap[e.To]
			if mu == "" || mv == "" || mu == mv {
				continue
			}
			if _, err := gp.AddEdge(mu, mv, e.Weight); err != nil {
				return nil, err
			}
		}

		mc := flow.NewMinCut(gp, s, t, opts.Flow)
		if err := mc.Run(); err != nil {
			return nil, err
		}
		lambda := int64(math.Round(mc.FlowValue()))

		var x1, x2 []string
		for _, v := range mem {
			if mc.InSourceSide(v) {
				x1 = append(x1, v)
			} else {
				x2 = append(x2, v)
			}
		}
		sort.Strings(x1)
		sort.Strings(x2)

		id1 := fmt.Sprintf("X%d", nextID)
		nextID++
		id2 := fmt.Sprintf("X%d", nextID)
		nextID++

		delete(members, x)
		oldAdj := adj[x]
		delete(adj, x)

		members[id1] = x1
		members[id2] = x2
		adj[id1] = map[string]int64{id2: lambda}
		adj[id2] = map[string]int64{id1: lambda}

		for y, w := range oldAdj {
			target := id2
			if mc.InSourceSide(repOf[y]) {
				target = id1
			}
			delete(adj[y], x)
			adj[y][target] = w
			adj[target][y] = w
		}

		if len(x1) > 1 {
			worklist = append(worklist, id1)
		}
		if len(x2) > 1 {
			worklist = append(worklist, id2)
		}

		contractionSeconds += ctrTimer.Tick().Seconds()
	}

	finalVertex := make(map[string]string, len(members))
	for id, mem := range members {
		finalVertex[id] = mem[0]
	}

	done := make(map[[2]string]bool)
	for id, neighbors := range adj {
		for nid, w := range neighbors {
			a, b := finalVertex[id], finalVertex[nid]
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			if done[key] {
				continue
			}
			done[key] = true
			if _, err := out.AddEdge(a, b, w); err != nil {
				return nil, err
			}
		}
	}

	opts.Logger.Add("gh_time_contraction", contractionSeconds)
	opts.Logger.Add("gh_time_total", total.Tick().Seconds())

	return &Tree{g: out}, nil
}

// collectComponent returns every supernode id reachable from start in adj
// without passing through exclude. Since adj encodes a tree, removing
// exclude splits it into one component per direct neighbor, so this always
// returns exactly the branch rooted at start.
func collectComponent(adj map[string]map[string]int64, exclude, start string) []string {
	visited := map[string]bool{start: true}
	queue := []string{start}
	order := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for next := range adj[cur] {
			if next == exclude || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
			order = append(order, next)
		}
	}

	return order
}
