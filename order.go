package cidr4

import "slices"

// Compare orders two blocks by their full 32-bit binary representation,
// prefix length ignored. The expansions are fixed-width, so lexicographic
// order over the bit strings equals unsigned numeric order of the base
// addresses. Returns -1, 0, or 1; it doubles as an ordering over plain
// addresses when the prefix is irrelevant.
func Compare(a, b Block) int {
	switch {
	case a.addr < b.addr:
		return -1
	case a.addr > b.addr:
		return 1
	}
	return 0
}

// SortBlocks sorts a reservation set in place into canonical order, so the
// allocator sees a deterministic sequence.
func SortBlocks(blocks []Block) {
	slices.SortFunc(blocks, Compare)
}
