// Package format reads and writes the graph file formats this project's
// algorithms consume: the DIMACS shortest-path subset and the Matrix Market
// coordinate subset for input, and GraphViz DOT for output.
package format
