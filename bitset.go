// Copyright 2026 The pathhamcycle Authors
// License MIT: http://opensource.org/licenses/MIT

package pathhamcycle

import "math/bits"

// BitSet is a fixed-capacity set of small non-negative integers, used for
// vertex sets (capacity MaxN) and face sets (capacity MaxF). A single
// 64-bit word covers both: MaxF = 2*MaxN-4 = 64 is the wider of the two, and
// still fits one machine word, so BitSet needs no backing slice.
//
// BitSets are value types: set algebra returns a fresh value rather than
// mutating a receiver, matching the way the reference algorithm threads
// bitsets through its recursion as plain (copied) parameters.
type BitSet uint64

// BitSetCapacity is the number of distinct elements a BitSet can hold,
// indices [0, BitSetCapacity).
const BitSetCapacity = 64

// EmptyBitSet returns the empty set.
func EmptyBitSet() BitSet { return 0 }

// Singleton returns a set containing only i.
func Singleton(i int) BitSet { return BitSet(1) << uint(i) }

// Contains reports whether i is a member of s.
func (s BitSet) Contains(i int) bool { return s&(BitSet(1)<<uint(i)) != 0 }

// Add returns s with i added.
func (s BitSet) Add(i int) BitSet { return s | (BitSet(1) << uint(i)) }

// Remove returns s with i removed.
func (s BitSet) Remove(i int) BitSet { return s &^ (BitSet(1) << uint(i)) }

// Union returns the union of s and t.
func (s BitSet) Union(t BitSet) BitSet { return s | t }

// Intersection returns the intersection of s and t.
func (s BitSet) Intersection(t BitSet) BitSet { return s & t }

// IsEmpty reports whether s has no members.
func (s BitSet) IsEmpty() bool { return s == 0 }

// IsNotEmpty reports whether s has at least one member.
func (s BitSet) IsNotEmpty() bool { return s != 0 }

// ContainsAll reports whether t is a subset of s.
func (s BitSet) ContainsAll(t BitSet) bool { return s&t == t }

// AddTo adds i to *s in place, mirroring the reference implementation's
// ADD macro where a named bitset variable is mutated rather than
// rebound from a returned value.
func (s *BitSet) AddTo(i int) { *s = s.Add(i) }

// RemoveFrom removes i from *s in place.
func (s *BitSet) RemoveFrom(i int) { *s = s.Remove(i) }

// AddAllTo unions t into *s in place.
func (s *BitSet) AddAllTo(t BitSet) { *s |= t }

// Len returns the number of members of s.
func (s BitSet) Len() int { return bits.OnesCount64(uint64(s)) }
