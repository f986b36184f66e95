// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

// cycleSearch holds the state shared across one top-level search attempt:
// the partial cycle under construction and the oriented edge it is rooted
// at. Per spec this is reset per top-level attempt (one per starting edge
// out of the minimum-degree vertex); the four face bitsets of §4.5.2 are
// not here because they are per-recursion-frame values threaded through
// continueCycle/finish as ordinary parameters, not shared mutable state.
type cycleSearch struct {
	g                *Graph
	currentCycle     BitSet
	firstVertexCycle NI
	firstEdgeCycle   EI
}

// HasPathHamiltonianCycle decides whether g admits a path-Hamiltonian
// cycle: a Hamiltonian cycle such that every face the cycle misses lies on
// the same side of the cycle's Jordan curve.
//
// The search roots at a minimum-degree vertex (ties broken by lowest
// index) — every plane triangulation with at least 3 vertices has a vertex
// of degree at most 5, which bounds the top-level branching — and tries
// each oriented edge out of it as the first step of the cycle, returning
// true on the first starting edge that leads to a successful completion.
func (g *Graph) HasPathHamiltonianCycle() bool {
	if g.N == 0 {
		return false
	}

	minVertex := NI(0)
	minDegree := g.Degree[0]
	for v := 1; v < g.N; v++ {
		if g.Degree[v] < minDegree {
			minDegree = g.Degree[v]
			minVertex = NI(v)
		}
	}

	cs := &cycleSearch{g: g, firstVertexCycle: minVertex}

	start := g.FirstEdge[minVertex]
	for e := start; ; {
		edge := g.edge(e)
		cs.currentCycle = Singleton(int(minVertex)).Add(int(edge.End))
		cs.firstEdgeCycle = e
		saturatedFaces := edge.IncidentFaces

		start2 := g.FirstEdge[edge.End]
		for e2 := start2; ; {
			edge2 := g.edge(e2)
			if !cs.currentCycle.Contains(int(edge2.End)) {
				facesRight := g.facesBetween(e2, edge.Inverse)
				facesLeft := g.facesBetween(edge.Inverse, e2)
				if cs.continueCycle(e2, g.N-2, saturatedFaces, facesRight, facesLeft, EmptyBitSet()) {
					return true
				}
			}
			e2 = edge2.Next
			if e2 == start2 {
				break
			}
		}

		cs.currentCycle = cs.currentCycle.Remove(int(edge.End))
		e = edge.Next
		if e == start {
			break
		}
	}

	return false
}

// continueCycle extends the partial cycle by newEdge and, on success,
// returns true all the way back to HasPathHamiltonianCycle. The end point
// of newEdge has not yet been added to currentCycle when this is called;
// the faces between newEdge and the previously added edge have already
// been folded into facesRight/facesLeft by the caller.
func (cs *cycleSearch) continueCycle(newEdge EI, remainingVertices int, saturatedFaces, facesRight, facesLeft, emptyFaces BitSet) bool {
	g := cs.g
	edge := g.edge(newEdge)

	// P1: a face cannot be on both sides of the cycle.
	if facesRight.Intersection(facesLeft).IsNotEmpty() {
		return false
	}

	// Only faces touching edge.Start can have just become empty: a face
	// becomes empty exactly when the last of its boundary vertices joins
	// the cycle without the face itself ever being saturated.
	for f := 0; f < g.NF; f++ {
		if g.VerticesInFace[f].Contains(int(edge.Start)) &&
			!saturatedFaces.Contains(f) &&
			cs.currentCycle.ContainsAll(g.VerticesInFace[f]) {
			emptyFaces = emptyFaces.Add(f)
		}
	}

	// P2: an empty face can't be on both sides either.
	if emptyFaces.Intersection(facesLeft).IsNotEmpty() && emptyFaces.Intersection(facesRight).IsNotEmpty() {
		return false
	}

	cs.currentCycle = cs.currentCycle.Add(int(edge.End))
	saturatedFaces = saturatedFaces.Union(edge.IncidentFaces)

	var ok bool
	if remainingVertices == 1 {
		// Last vertex: the cycle must close back to its root.
		if g.Neighbours[edge.End].Contains(int(cs.firstVertexCycle)) {
			closeEdge, err := g.findEdge(edge.End, cs.firstVertexCycle)
			if err == nil {
				ok = cs.finish(closeEdge, saturatedFaces,
					facesRight.Union(g.facesBetween(closeEdge, edge.Inverse)),
					facesLeft.Union(g.facesBetween(edge.Inverse, closeEdge)),
					emptyFaces)
			}
		}
	} else {
		start := g.FirstEdge[edge.End]
		for e := start; ; {
			cand := g.edge(e)
			if !cs.currentCycle.Contains(int(cand.End)) {
				if cs.continueCycle(e, remainingVertices-1, saturatedFaces,
					facesRight.Union(g.facesBetween(e, edge.Inverse)),
					facesLeft.Union(g.facesBetween(edge.Inverse, e)),
					emptyFaces) {
					ok = true
					break
				}
			}
			e = cand.Next
			if e == start {
				break
			}
		}
	}

	cs.currentCycle = cs.currentCycle.Remove(int(edge.End))
	return ok
}

// finish attempts to close the cycle with closeEdge and decides whether the
// completed cycle is path-Hamiltonian. Its verdict is the search's final
// answer for this branch — unlike the reference implementation, whose
// immediate caller discarded it (see spec's open question), it is
// propagated all the way back up the recursion.
func (cs *cycleSearch) finish(closeEdge EI, saturatedFaces, facesRight, facesLeft, emptyFaces BitSet) bool {
	if facesRight.Intersection(facesLeft).IsNotEmpty() {
		return false
	}

	g := cs.g
	edge := g.edge(closeEdge)

	saturatedFaces = saturatedFaces.Union(edge.IncidentFaces)
	facesRight = facesRight.Union(g.facesBetween(cs.firstEdgeCycle, edge.Inverse))
	facesLeft = facesLeft.Union(g.facesBetween(edge.Inverse, cs.firstEdgeCycle))

	for f := 0; f < g.NF; f++ {
		if !saturatedFaces.Contains(f) {
			emptyFaces = emptyFaces.Add(f)
		}
	}

	if emptyFaces.Intersection(facesLeft).IsNotEmpty() && emptyFaces.Intersection(facesRight).IsNotEmpty() {
		return false
	}

	return true
}
