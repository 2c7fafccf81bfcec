package cidr4

import (
	"fmt"
	"strings"
)

// ToNumeric packs a dotted address A.B.C.D into an unsigned 32-bit integer
// as (a<<24)|(b<<16)|(c<<8)|d. The input must carry exactly four octets and
// no prefix length. Unsigned arithmetic keeps addresses with a leading
// octet >= 128 positive.
func ToNumeric(addr string) (uint32, error) {
	if strings.Contains(addr, "/") || strings.Count(addr, ".") != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, addr)
	}
	b, err := ParseBlock(addr)
	if err != nil {
		return 0, err
	}
	return b.addr, nil
}

// FromNumeric is the inverse of ToNumeric, extracting each byte by shift
// and mask.
func FromNumeric(n uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", n>>24&0xff, n>>16&0xff, n>>8&0xff, n&0xff)
}

// ServiceAddress returns the dotted address at base+offset inside the given
// block, conventionally used for fixed service endpoints such as a DNS
// resolver at base+2. The input must be a full A.B.C.D/N block; both a
// missing prefix length and a short octet count are invalid. The offset is
// added with carry propagation across octets, each wrapping modulo 256, so
// the sum wraps modulo 2^32 overall.
func ServiceAddress(cidr string, offset int) (string, error) {
	addrPart, _, hasPrefix := strings.Cut(cidr, "/")
	if !hasPrefix {
		return "", fmt.Errorf("%w: %q lacks a prefix length", ErrInvalidFormat, cidr)
	}
	if strings.Count(addrPart, ".") != 3 {
		return "", fmt.Errorf("%w: %q needs four octets", ErrInvalidFormat, cidr)
	}

	b, err := ParseBlock(cidr)
	if err != nil {
		return "", err
	}
	return FromNumeric(b.addr + uint32(offset)), nil
}
