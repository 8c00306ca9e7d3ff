package flow

import (
	"fmt"
	"math"

	"github.com/dcrane/gokcut/core"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds-Karp algorithm: repeated BFS for the shortest (fewest-edge)
// augmenting path in the residual capacity map.
//
// Complexity: O(V·E²). Memory: O(V + E).
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow float64, residual *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottleneck := bfsAugmentingPath(capMap, source, sink, opts.Epsilon)
		if len(path) == 0 || bottleneck <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			fmt.Printf("edmonds-karp: augmenting path %v with δ=%g\n", path, bottleneck)
		}
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottleneck
			capMap[v][u] += bottleneck
		}
		maxFlow += bottleneck
	}

	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest source→sink path in the residual
// capacity map with every edge above eps, returning the path and its
// bottleneck capacity. Returns a nil path if sink is unreachable.
func bfsAugmentingPath(
	capMap map[string]map[string]float64,
	source, sink string,
	eps float64,
) ([]string, float64) {
	parent := make(map[string]string, len(capMap))
	bottle := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == sink {
			break
		}
		for v, capUV := range capMap[u] {
			if visited[v] || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			if capUV < bottle[u] {
				bottle[v] = capUV
			} else {
				bottle[v] = bottle[u]
			}
			queue = append(queue, v)
		}
	}

	if !visited[sink] {
		return nil, 0
	}

	path := []string{sink}
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append([]string{p}, path...)
		cur = p
	}

	return path, bottle[sink]
}
