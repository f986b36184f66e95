// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

import "github.com/soniakeys/bits"

// makeDual discovers every face of g by the standard half-edge face walk
// and labels each oriented edge with the face on its right.
//
// Faces are numbered in discovery order: vertices are visited in index
// order, and within each vertex its cyclic edge list is walked via Next;
// the first unvisited edge encountered seeds a new face, traced by
// repeatedly taking e := e.Inverse.Prev until the walk returns to its
// start.
//
// The visited set here is a bits.Bits sized to the actual edge count
// rather than the mark-epoch scheme of the reference implementation — both
// are once-per-graph visited sets, and a graph's oriented-edge count can
// exceed the 64 bits a fixed BitSet holds, so a dynamically sized bit
// vector is used instead.
func (g *Graph) makeDual() error {
	visited := bits.New(len(g.Edges))

	g.FaceStart = g.FaceStart[:0]
	g.FaceSize = g.FaceSize[:0]
	nf := 0

	for v := 0; v < g.N; v++ {
		start := g.FirstEdge[v]
		for e := start; ; {
			if visited.Bit(int(e)) == 0 {
				face := FI(nf)
				size := 0
				walkStart := e
				for cur := e; ; {
					visited.SetBit(int(cur), 1)
					g.edge(cur).RightFace = face
					size++
					cur = g.edge(g.edge(cur).Inverse).Prev
					if cur == walkStart {
						break
					}
				}
				g.FaceStart = append(g.FaceStart, walkStart)
				g.FaceSize = append(g.FaceSize, size)
				nf++
			}
			e = g.edge(e).Next
			if e == start {
				break
			}
		}
	}

	g.NF = nf
	return nil
}
