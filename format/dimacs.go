package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dcrane/gokcut/core"
)

// ReadDIMACS parses the DIMACS shortest-path file subset: zero or more
// comment lines beginning with 'c', a single header line "p sp N M" giving
// the vertex and edge counts, followed by exactly M edge lines "a U V W"
// (1-based vertex numbers, integer weight). Vertices are materialized with
// their decimal string id ("1".."N"); edges are added undirected and
// weighted in declaration order.
//
// Returns a *ParseError wrapping any malformed line; parsing halts at the
// first one.
func ReadDIMACS(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	var header string
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}
		header = line
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(header, "p sp") {
		return nil, newParseError("dimacs", lineNo, header, "expected header \"p sp N M\"")
	}

	var n, m int
	if _, err := fmt.Sscanf(header[4:], "%d %d", &n, &m); err != nil {
		return nil, newParseError("dimacs", lineNo, header, "malformed header counts")
	}

	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 1; i <= n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}

	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			return nil, newParseError("dimacs", lineNo+1, "", "unexpected end of file reading edges")
		}
		lineNo++
		line := scanner.Text()
		if !strings.HasPrefix(line, "a") {
			return nil, newParseError("dimacs", lineNo, line, "expected edge line beginning with 'a'")
		}

		var u, v int
		var w int64
		if _, err := fmt.Sscanf(line[1:], "%d %d %d", &u, &v, &w); err != nil {
			return nil, newParseError("dimacs", lineNo, line, "malformed edge fields")
		}

		if _, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), w); err != nil {
			return nil, newParseError("dimacs", lineNo, line, err.Error())
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
