// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

// Edge is one oriented half of an undirected edge of the embedding: it
// knows the vertex it starts and ends at, its clockwise neighbours in the
// rotation at its start vertex, its inverse (the other oriented half), and
// — once the dual has been built — the face on its right.
type Edge struct {
	Start, End NI

	// Next and Prev are the oriented edges that follow/precede this one in
	// clockwise order around Start.
	Next, Prev EI

	// Inverse is the oriented edge with Start and End swapped.
	Inverse EI

	// RightFace is the face on the right of this edge, valid only after
	// (*Graph).makeDual has run.
	RightFace FI

	// IncidentFaces is {RightFace(e), RightFace(e.Inverse)}, populated in
	// the decoder's post-pass once the dual exists.
	IncidentFaces BitSet
}

// Graph is a plane graph held as a rotation system: an arena of oriented
// edges plus the per-vertex and per-face tables derived from it. A Graph is
// built once by Decode from a single input record, used for exactly one
// search, and then discarded — it owns no state that needs resetting
// between uses.
type Graph struct {
	N  int // vertex count
	NE int // oriented edge count (== 2 * undirected edge count)
	NF int // face count, valid after the dual is built

	// Edges is the oriented-edge arena, length NE after decoding.
	Edges []Edge

	FirstEdge  []EI     // arbitrary outgoing edge per vertex, length N
	Degree     []int    // length N
	Neighbours []BitSet // adjacent-vertex bitset per vertex, length N

	FaceStart      []EI     // arbitrary boundary edge per face, length NF
	FaceSize       []int    // boundary length per face, length NF
	VerticesInFace []BitSet // boundary vertex bitset per face, length NF
}

func newGraph(n int) *Graph {
	return &Graph{
		N:          n,
		Edges:      make([]Edge, 0, MaxE),
		FirstEdge:  make([]EI, n),
		Degree:     make([]int, n),
		Neighbours: make([]BitSet, n),
	}
}

// edge returns a pointer into the edge arena, for in-place mutation during
// decoding and dual construction.
func (g *Graph) edge(e EI) *Edge { return &g.Edges[e] }

// findEdge walks the rotation at vertex from looking for the oriented edge
// to vertex to, returning InternalInconsistency if the rotation closes
// without finding it. Used both by the decoder (to pair up the two
// oriented halves of an undirected edge) and by the search engine (to
// locate the edge that closes the cycle back to its root).
func (g *Graph) findEdge(from, to NI) (EI, error) {
	start := g.FirstEdge[from]
	e := start
	for {
		if g.Edges[e].End == to {
			return e, nil
		}
		e = g.Edges[e].Next
		if e == start {
			return 0, &InternalInconsistency{Vertex: from, Neighbour: to}
		}
	}
}

// facesBetween returns the bitset of right-faces of every oriented edge
// met when following Next in clockwise order from from up to to,
// including from itself but not to. If from == to the result is empty.
//
// This is the fundamental primitive the search engine uses to attribute a
// vertex's incident faces to one side of the partial cycle or the other.
func (g *Graph) facesBetween(from, to EI) BitSet {
	faces := EmptyBitSet()
	for e := from; e != to; e = g.Edges[e].Next {
		faces = faces.Add(int(g.Edges[e].RightFace))
	}
	return faces
}
