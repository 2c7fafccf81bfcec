package cidr4

import "math"

// maxProposalPrefix caps how coarse a proposed block may get: never larger
// than a /12.
const maxProposalPrefix = 12

// ProposeBlock computes one candidate block placed immediately after the
// higher-based of the two given blocks. The candidate prefix length is one
// bit coarser than the more specific of the two prefixes, capped at /12;
// the candidate base jumps past the higher base by one candidate-sized
// block. The second return is false when the jump leaves 32-bit address
// space upward, or when coarsening degenerates below /0.
func ProposeBlock(a, b Block) (Block, bool) {
	plen := max(a.prefixLen, b.prefixLen) - 1
	if plen > maxProposalPrefix {
		plen = maxProposalPrefix
	}
	if plen < 0 {
		return Block{}, false
	}

	base := uint64(max(a.addr, b.addr)) + uint64(1)<<uint(addrBitLen-plen)
	if base > math.MaxUint32 {
		return Block{}, false
	}
	return Block{addr: uint32(base), prefixLen: plen}, true
}

// Allocate greedily derives a block from the seed and a sorted reservation
// list: the first reservation for which ProposeBlock yields a candidate
// wins, and the seed comes back unchanged when none does. The candidate is
// only guaranteed clear of the pair that produced it, not of the whole set;
// use AllocateChecked when the result must be disjoint from every
// reservation.
func Allocate(seed Block, sorted []Block) Block {
	for _, r := range sorted {
		if c, ok := ProposeBlock(seed, r); ok {
			return c
		}
	}
	return seed
}

// AllocateChecked is the verified variant of Allocate: a bump allocation
// placed at the first address past every reservation's range, sized by the
// same coarsen-and-cap policy as ProposeBlock, and validated against the
// full reservation set before being returned. The second return is false
// when the address space is exhausted upward or the candidate still
// collides (a reservation coarser than the candidate can swallow
// everything above it).
func AllocateChecked(seed Block, reservations []Block) (Block, bool) {
	if len(reservations) == 0 {
		return seed, true
	}

	plen := seed.prefixLen
	var end uint64
	for _, r := range reservations {
		plen = max(plen, r.prefixLen)
		if e := blockEnd(r); e > end {
			end = e
		}
	}
	plen = min(plen-1, maxProposalPrefix)
	if plen < 0 {
		return Block{}, false
	}
	if end > math.MaxUint32 {
		return Block{}, false
	}

	cand := Block{addr: uint32(end), prefixLen: plen}
	if OverlapsAny(cand, reservations) {
		return Block{}, false
	}
	return cand, true
}

// blockEnd returns the first address past the block's range, masking off
// any host bits the block's stated base carries.
func blockEnd(b Block) uint64 {
	size := uint64(1) << uint(addrBitLen-b.prefixLen)
	return uint64(b.addr)&^(size-1) + size
}
