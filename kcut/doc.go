// Package kcut derives the minimum k-way cut value and vertex coloring of a
// graph from its Gomory–Hu tree: by the Gomory–Hu property, the minimum
// k-cut equals the sum of the k-1 smallest tree-edge weights, and removing
// those edges from the tree splits it into exactly k connected components
// corresponding to the optimal partition.
package kcut
