package cidr4

// Overlaps reports whether two blocks' address ranges intersect. The ranges
// intersect iff the binary expansions agree over the shorter of the two
// prefix lengths: a shorter prefix denotes the hierarchically larger block,
// so equality at that depth means one range nests in (or equals) the other.
func Overlaps(a, b Block) bool {
	n := min(a.prefixLen, b.prefixLen)
	if n == 0 {
		// A /0 covers the whole address space
		return true
	}
	shift := uint(addrBitLen - n)
	return a.addr>>shift == b.addr>>shift
}

// OverlapsAny reports whether the block overlaps any entry across the given
// lists, short-circuiting on the first match. No lists, no overlap.
func OverlapsAny(b Block, lists ...[]Block) bool {
	for _, list := range lists {
		for _, r := range list {
			if Overlaps(b, r) {
				return true
			}
		}
	}
	return false
}
