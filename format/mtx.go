package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dcrane/gokcut/core"
)

// ReadMatrixMarket parses the Matrix Market coordinate file subset: a magic
// first line beginning "%%MatrixMarket matrix coordinate", zero or more '%'
// comment lines, a single "N N M" size line, followed by exactly M entry
// lines "U V [W]" (1-based indices; a missing weight defaults to 1).
// Vertices are materialized with their decimal string id ("1".."N").
//
// Returns a *ParseError wrapping any malformed line; parsing halts at the
// first one.
func ReadMatrixMarket(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	if !scanner.Scan() {
		return nil, newParseError("matrixmarket", 0, "", "empty input")
	}
	lineNo++
	magic := scanner.Text()
	if !strings.HasPrefix(magic, "%%MatrixMarket matrix coordinate") {
		return nil, newParseError("matrixmarket", lineNo, magic, "expected MatrixMarket coordinate header")
	}

	var size string
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "%") {
			continue
		}
		size = line
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var n, cols, m int
	if _, err := fmt.Sscanf(size, "%d %d %d", &n, &cols, &m); err != nil {
		return nil, newParseError("matrixmarket", lineNo, size, "malformed size line")
	}

	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 1; i <= n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}

	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			return nil, newParseError("matrixmarket", lineNo+1, "", "unexpected end of file reading entries")
		}
		lineNo++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, newParseError("matrixmarket", lineNo, line, "expected at least two fields")
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, newParseError("matrixmarket", lineNo, line, "malformed row index")
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, newParseError("matrixmarket", lineNo, line, "malformed column index")
		}

		var w int64 = 1
		if len(fields) >= 3 {
			parsed, err := strconv.ParseInt(fields[2], 10, 64)
			if err == nil {
				w = parsed
			}
		}

		if _, err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), w); err != nil {
			return nil, newParseError("matrixmarket", lineNo, line, err.Error())
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
