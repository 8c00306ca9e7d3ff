// Package gomoryhu builds a Gomory–Hu tree over an undirected weighted
// graph: a spanning tree T such that the minimum edge weight on the T-path
// between any two vertices equals their maximum flow (minimum cut) in the
// original graph. Two construction strategies are provided: BuildGusfield,
// Gusfield's n-1 max-flow-call predecessor-relabeling algorithm, and
// BuildClassical, the original supernode-contraction algorithm. Both yield
// trees satisfying the same cut-equivalence property.
package gomoryhu
