// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

import "testing"

// octahedronAdjacency is the octahedron as a triangular antiprism: an outer
// triangle 0,1,2, an inner triangle 3,4,5 rotated 60 degrees against it, and
// the six zigzag edges between them. Equivalently, each vertex is adjacent
// to every other vertex except its antipodal partner (0-5, 1-3, 2-4).
func octahedronAdjacency() [][]int {
	return [][]int{
		{2, 5, 4, 3},
		{1, 3, 6, 5},
		{1, 4, 6, 2},
		{1, 5, 6, 3},
		{1, 2, 6, 4},
		{2, 3, 4, 5},
	}
}

// icosahedronAdjacency is the icosahedron as a gyroelongated pentagonal
// bipyramid: a north pole (0), an upper pentagon (1-5), a lower pentagon
// (6-10) offset by half a step and joined to the upper one by a pentagonal
// antiprism, and a south pole (11).
func icosahedronAdjacency() [][]int {
	return [][]int{
		{2, 3, 4, 5, 6},
		{1, 6, 11, 7, 3},
		{1, 2, 7, 8, 4},
		{1, 3, 8, 9, 5},
		{1, 4, 9, 10, 6},
		{1, 5, 10, 11, 2},
		{12, 8, 3, 2, 11},
		{12, 9, 4, 3, 7},
		{12, 10, 5, 4, 8},
		{12, 11, 6, 5, 9},
		{12, 7, 2, 6, 10},
		{7, 11, 10, 9, 8},
	}
}

// doubleStackedAdjacency is a triangle (0,1,2) stacked once with an interior
// vertex (3), then stacked again inside face (0,1,3) with a second interior
// vertex (4). Both stacked vertices touch the shared edge 0-1, so every
// Hamiltonian cycle must leave one of the two triangles it bounds entirely
// on one side.
func doubleStackedAdjacency() [][]int {
	return [][]int{
		{2, 3, 4, 5},
		{1, 5, 4, 3},
		{1, 2, 4},
		{1, 3, 2, 5},
		{1, 4, 2},
	}
}

func mustDecode(t *testing.T, adj [][]int) *Graph {
	t.Helper()
	g, err := Decode(recordFromAdjacency(adj))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return g
}

func TestHasPathHamiltonianCycleTetrahedron(t *testing.T) {
	g := mustDecode(t, tetrahedronAdjacency())
	if !g.HasPathHamiltonianCycle() {
		t.Errorf("tetrahedron: want true")
	}
}

func TestHasPathHamiltonianCycleOctahedron(t *testing.T) {
	g := mustDecode(t, octahedronAdjacency())
	checkEulerInvariant(t, g)
	if !g.HasPathHamiltonianCycle() {
		t.Errorf("octahedron: want true")
	}
}

func TestHasPathHamiltonianCycleIcosahedron(t *testing.T) {
	g := mustDecode(t, icosahedronAdjacency())
	checkEulerInvariant(t, g)
	if !g.HasPathHamiltonianCycle() {
		t.Errorf("icosahedron: want true")
	}
}

func TestHasPathHamiltonianCycleDoubleStacked(t *testing.T) {
	g := mustDecode(t, doubleStackedAdjacency())
	checkEulerInvariant(t, g)
	if g.HasPathHamiltonianCycle() {
		t.Errorf("double-stacked triangulation: want false")
	}
}

func TestHasPathHamiltonianCycleEmptyGraph(t *testing.T) {
	g := &Graph{N: 0}
	if g.HasPathHamiltonianCycle() {
		t.Errorf("N=0: want false")
	}
}
