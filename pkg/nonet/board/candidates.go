package board

import "math/bits"

// CandidateSet tracks the alphabet positions still possible for a tile
// as a bitmask. Bit i represents the symbol at alphabet position i,
// which bounds the alphabet at 64 symbols (a 64x64 board).
type CandidateSet uint64

// Full returns the set containing the first n alphabet positions.
func Full(n int) CandidateSet {
	if n >= 64 {
		return ^CandidateSet(0)
	}
	return CandidateSet(1)<<n - 1
}

// Only returns the set containing just position i.
func Only(i int) CandidateSet {
	return CandidateSet(1) << i
}

// Has reports whether position i is in the set.
func (s CandidateSet) Has(i int) bool {
	return s&Only(i) != 0
}

// With returns the set extended with position i.
func (s CandidateSet) With(i int) CandidateSet {
	return s | Only(i)
}

// Without returns the set with all positions in used removed.
func (s CandidateSet) Without(used CandidateSet) CandidateSet {
	return s &^ used
}

// Len returns the number of positions in the set.
func (s CandidateSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Single returns the sole position in the set, or false if the set does
// not contain exactly one position.
func (s CandidateSet) Single() (int, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(s)), true
}

// Positions returns the positions in the set in ascending order. The
// fixed order keeps candidate iteration, and therefore search order,
// deterministic.
func (s CandidateSet) Positions() []int {
	out := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}
	return out
}
