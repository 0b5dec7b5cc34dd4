package calculus

import "math/bits"

// Count reports how many base relations are present in l.
//
// Complexity: O(1) via a hardware popcount.
func Count(l Label) int {
	return bits.OnesCount64(uint64(l))
}

// IsBase reports whether l contains exactly one base relation.
func IsBase(l Label) bool {
	return Count(l) == 1
}

// Bases returns the single-bit labels whose union equals l, in ascending
// bit order. The ordering is part of the contract: refinement search
// branches over these labels and must do so deterministically.
//
// Bases(EmptyLabel) returns an empty slice.
//
// Complexity: O(Count(l)) time, one allocation.
func Bases(l Label) []Label {
	out := make([]Label, 0, Count(l))
	// Strip the lowest set bit on each step; TrailingZeros64 yields the
	// bit position, so enumeration is ascending by construction.
	for rest := uint64(l); rest != 0; rest &= rest - 1 {
		out = append(out, Label(1)<<uint(bits.TrailingZeros64(rest)))
	}

	return out
}
