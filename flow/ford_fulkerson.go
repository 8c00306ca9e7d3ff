package flow

import (
	"fmt"
	"math"

	"github.com/dcrane/gokcut/core"
)

// FordFulkerson computes the maximum flow from source to sink in a capacity
// network.
//
// Ford-Fulkerson repeatedly finds a path in the residual network with
// positive capacity and augments along it until no such path exists.
//
// Steps:
//  1. Validation: ensure source and sink exist.
//  2. Build residual map: for every edge u→v, capacity[u][v] = sum of all
//     parallel edge weights, capacity[v][u] starts at (or accumulates) 0.
//  3. Augmentation loop:
//     a. DFS the residual map for any path from source to sink whose
//     minimum edge capacity exceeds Epsilon.
//     b. Let δ = bottleneck capacity along the path.
//     c. For each edge (u→v) on the path: capacity[u][v] -= δ, capacity[v][u] += δ.
//     d. maxFlow += δ; repeat until no augmenting path remains.
//  4. Construct the residual *core.Graph from the final capacity map.
//
// Complexity: O(E·F) where F ≈ maxFlow/Epsilon.
// Memory:     O(V + E) for the residual capacity map.
//
// Use Ford-Fulkerson when simplicity matters and capacities are integral or
// small; for stronger worst-case guarantees prefer EdmondsKarp or Dinic.
func FordFulkerson(
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

		visited := make(map[string]bool, len(capMap))
		path, bottleneck := dfsFindPath(capMap, source, sink, visited, math.Inf(1), opts.Epsilon)
		if len(path) == 0 {
			break
		}
		if opts.Verbose {
			fmt.Printf("ford-fulkerson: augmenting path %v with δ=%g\n", path, bottleneck)
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

// dfsFindPath walks the residual capacity map depth-first looking for any
// source→sink path whose every edge has capacity above eps. It returns the
// path (inclusive of both endpoints) and its bottleneck capacity, or a nil
// path if sink is unreachable.
func dfsFindPath(
	capMap map[string]map[string]float64,
	u, sink string,
	visited map[string]bool,
	available, eps float64,
) ([]string, float64) {
	if u == sink {
		return []string{sink}, available
	}
	visited[u] = true
	for v, capUV := range capMap[u] {
		if visited[v] || capUV <= eps {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		path, flow := dfsFindPath(capMap, v, sink, visited, send, eps)
		if len(path) > 0 {
			return append([]string{u}, path...), flow
		}
	}

	return nil, 0
}
