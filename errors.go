// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

import "fmt"

// FormatError reports a record that cannot describe a graph: a vertex count
// that is zero or exceeds MaxN, or a neighbour index outside [1, N].
// Header and truncation problems are reported by the planarcode package's
// own FormatError before a record reaches Decode. It is always fatal — the caller is expected to abort the
// run rather than try to recover.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pathhamcycle: format error: %s", e.Msg)
}

// CapacityError reports a decoded adjacency list exceeding MaxVal entries
// for the given vertex.
type CapacityError struct {
	Vertex NI
	Msg    string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("pathhamcycle: capacity error at vertex %d: %s", e.Vertex, e.Msg)
}

// InternalInconsistency reports that findEdge could not locate the expected
// inverse oriented edge between Vertex and Neighbour. This indicates
// corrupt input (a neighbour list that isn't symmetric) rather than a
// recoverable condition.
type InternalInconsistency struct {
	Vertex, Neighbour NI
}

func (e *InternalInconsistency) Error() string {
	return fmt.Sprintf("pathhamcycle: internal inconsistency: no inverse edge found between vertex %d and neighbour %d", e.Vertex, e.Neighbour)
}
