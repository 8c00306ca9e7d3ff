package gomoryhu

import "errors"

var (
	// ErrEmptyGraph is returned when the input graph has no vertices.
	ErrEmptyGraph = errors.New("gomoryhu: graph is empty")

	// ErrGraphNil is returned when a nil *core.Graph is passed to a builder.
	ErrGraphNil = errors.New("gomoryhu: graph is nil")

	// ErrVertexNotFound is returned when a requested vertex is absent from
	// the tree.
	ErrVertexNotFound = errors.New("gomoryhu: vertex not found")
)
