package cidr4

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	addrBitLen = 32
	octetBits  = 8
)

// Block is one IPv4 CIDR reservation: a 32-bit base address plus an
// effective prefix length. Octets missing from the input count as zero in
// the base address; a missing prefix length defaults to 8 bits per supplied
// octet, so "10.0" means 10.0.0.0/16.
type Block struct {
	addr      uint32
	prefixLen int
}

// ParseBlock parses dotted-decimal CIDR input of the form A[.B[.C[.D]]][/N].
// Every octet must be 0-255 and N, when present, 0-32; anything else yields
// an error wrapping ErrInvalidFormat, ErrOctetRange, or ErrPrefixRange.
func ParseBlock(s string) (Block, error) {
	addrPart, prefixPart, hasPrefix := strings.Cut(s, "/")

	octets := strings.Split(addrPart, ".")
	if addrPart == "" || len(octets) > 4 {
		return Block{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var addr uint32
	for i, o := range octets {
		v, err := strconv.ParseUint(o, 10, 32)
		if err != nil {
			return Block{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		if v > 255 {
			return Block{}, fmt.Errorf("%w: %s in %q", ErrOctetRange, o, s)
		}
		// Pack the octet into its byte position, leftmost first
		addr |= uint32(v) << (24 - octetBits*i)
	}

	prefixLen := octetBits * len(octets)
	if hasPrefix {
		n, err := strconv.Atoi(prefixPart)
		if err != nil {
			return Block{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		if n < 0 || n > addrBitLen {
			return Block{}, fmt.Errorf("%w: /%d in %q", ErrPrefixRange, n, s)
		}
		prefixLen = n
	}

	return Block{addr: addr, prefixLen: prefixLen}, nil
}

// MustParseBlock is ParseBlock for inputs known to be well formed; it panics
// on error.
func MustParseBlock(s string) Block {
	b, err := ParseBlock(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Addr returns the base address as an unsigned 32-bit integer.
func (b Block) Addr() uint32 { return b.addr }

// PrefixLen returns the effective prefix length in bits.
func (b Block) PrefixLen() int { return b.prefixLen }

// Binary returns the full 32-character binary expansion of the base
// address, independent of prefix length.
func (b Block) Binary() string {
	return fmt.Sprintf("%032b", b.addr)
}

// BinaryPrefix returns the leading PrefixLen characters of Binary: the bits
// identifying the block's network portion.
func (b Block) BinaryPrefix() string {
	return b.Binary()[:b.prefixLen]
}

// String renders the canonical A.B.C.D/N form, all four octets present.
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", FromNumeric(b.addr), b.prefixLen)
}
