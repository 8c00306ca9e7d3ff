package format

import (
	"fmt"
	"io"

	"github.com/dcrane/gokcut/core"
)

// WriteDOT emits g as GraphViz "graph G { ... }" source to w. nodeLabels and
// edgeLabels are optional (nil is fine): when present, nodeLabels[id] and
// edgeLabels[edgeID] annotate the corresponding node or edge with a
// label="..." attribute. Vertices and edges are written in g's natural
// sorted order, so output is deterministic across runs.
func WriteDOT(w io.Writer, g *core.Graph, nodeLabels, edgeLabels map[string]string) error {
	if _, err := io.WriteString(w, "graph G {\n"); err != nil {
		return err
	}

	for _, id := range g.Vertices() {
		if label, ok := nodeLabels[id]; ok {
			if _, err := fmt.Fprintf(w, "    %s [label=%q];\n", id, label); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "    %s;\n", id); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		if label, ok := edgeLabels[e.ID]; ok {
			if _, err := fmt.Fprintf(w, "    %s -- %s [label=%q];\n", e.From, e.To, label); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "    %s -- %s;\n", e.From, e.To); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")

	return err
}
