// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

// Package pathhamcycle decides, for a plane triangulation, whether it has a
// Hamiltonian cycle such that every face the cycle misses lies on the same
// side of the cycle's Jordan curve (a "path-Hamiltonian cycle").
//
// Representation
//
// A graph is held as a rotation system: an arena of oriented edges ("half
// edges"), each knowing its inverse and its clockwise successor/predecessor
// at its start vertex. Faces are discovered once per graph by walking the
// rotation system and are recorded as a second, derived table (the "dual").
// Node numbers and edge/face indices are zero-based integers that serve
// directly as slice indexes, the same convention the wider graph-algorithm
// corpus this package is modeled on uses throughout.
//
// Terminology
//
// This package uses "vertex" and "oriented edge" rather than "node" and
// "arc": an oriented edge is one of the two directed halves of an
// undirected edge, carrying a start and an end vertex. The face "on the
// right" of an oriented edge is the face encountered by turning right while
// walking from its start to its end.
package pathhamcycle

// NI is a vertex index, zero-based, used directly as a slice index.
type NI int32

// EI is an oriented edge index into a Graph's edge arena.
type EI int32

// FI is a face index, zero-based, used directly as a slice index.
type FI int32

// noEdge marks an EI field that has not yet been assigned (used only
// transiently during decoding).
const noEdge EI = -1

const (
	// MaxN is the maximum number of vertices a Graph can hold.
	MaxN = 34
	// MaxE is the maximum number of oriented edges (two per undirected edge).
	MaxE = 6*MaxN - 12
	// MaxF is the maximum number of faces in a triangulation (Euler bound).
	MaxF = 2*MaxN - 4
	// MaxVal is the maximum degree of a vertex.
	MaxVal = MaxN - 1
)
