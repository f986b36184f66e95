// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

import (
	"fmt"

	"github.com/nvcleemp/pathhamcycle/planarcode"
)

// Decode builds a Graph's rotation system, vertex neighbour sets, and dual
// (face) structure from one decoded planarcode.Record.
//
// Per vertex i, in order: its oriented edges are allocated consecutively in
// the order its neighbours were given, linked into a clockwise doubly
// linked cyclic list, and paired with their inverse whenever the inverse
// was already laid out (i.e. for every neighbour j < i). Once every vertex
// has been processed, the dual is built and the per-edge IncidentFaces /
// per-face VerticesInFace tables are populated.
func Decode(rec *planarcode.Record) (*Graph, error) {
	n := rec.N
	if n <= 0 {
		return nil, &FormatError{Msg: "graph must have at least one vertex"}
	}
	if n > MaxN {
		return nil, &FormatError{Msg: fmt.Sprintf("vertex count %d exceeds MaxN (%d)", n, MaxN)}
	}

	g := newGraph(n)

	for i := 0; i < n; i++ {
		nbrs := rec.Adjacency[i]
		if len(nbrs) > MaxVal {
			return nil, &CapacityError{
				Vertex: NI(i),
				Msg:    fmt.Sprintf("degree %d exceeds MaxVal (%d)", len(nbrs), MaxVal),
			}
		}

		first := EI(len(g.Edges))
		for range nbrs {
			g.Edges = append(g.Edges, Edge{Inverse: noEdge})
		}

		deg := len(nbrs)
		for k, j1 := range nbrs {
			j := NI(j1 - 1)
			if j1 <= 0 || int(j) >= n {
				return nil, &FormatError{
					Msg: fmt.Sprintf("neighbour %d of vertex %d out of range", j1, i),
				}
			}
			e := first + EI(k)
			ed := g.edge(e)
			ed.Start, ed.End = NI(i), j
			ed.Next = first + EI((k+1)%deg)
			ed.Prev = first + EI((k-1+deg)%deg)
		}

		g.FirstEdge[i] = first
		g.Degree[i] = deg

		for k, j1 := range nbrs {
			j := NI(j1 - 1)
			g.Neighbours[i].AddTo(int(j))
			if j < NI(i) {
				e := first + EI(k)
				inv, err := g.findEdge(j, NI(i))
				if err != nil {
					return nil, err
				}
				g.edge(e).Inverse = inv
				g.edge(inv).Inverse = e
			}
		}
	}

	g.NE = len(g.Edges)

	if err := g.makeDual(); err != nil {
		return nil, err
	}

	g.VerticesInFace = make([]BitSet, g.NF)
	for ei := range g.Edges {
		e := &g.Edges[ei]
		inv := &g.Edges[e.Inverse]
		e.IncidentFaces = Singleton(int(e.RightFace)).Union(Singleton(int(inv.RightFace)))
		g.VerticesInFace[e.RightFace] = g.VerticesInFace[e.RightFace].Add(int(e.End))
	}

	return g, nil
}
