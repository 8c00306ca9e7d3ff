// Command gokcut (and its supporting packages) computes minimum k-way cuts
// of weighted undirected graphs via a Gomory–Hu tree.
//
// Package layout:
//
//	core/       — Graph, Vertex, Edge and thread-safe primitives, plus
//	              generic attribute maps and in-place contraction
//	flow/       — max-flow engines (Dinic, Edmonds-Karp, Ford-Fulkerson) and
//	              the MinCut wrapper exposing the induced s-t cut
//	bfs/, dfs/  — traversal used by MinCut's reachability pass and by the
//	              k-cut coloring step
//	gomoryhu/   — Gusfield and classical Gomory–Hu tree builders
//	kcut/       — minimum k-cut value and coloring derived from a tree
//	format/     — DIMACS / Matrix Market readers, DOT writer
//	preprocess/ — self-loop removal, parallel-edge collapse, connectivity
//	              repair
//	ghlog/      — timing + flat JSON key/value log sink
//	cmd/gokcut/ — command-line driver
package gokcut
