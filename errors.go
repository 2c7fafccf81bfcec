package cidr4

import "errors"

var (
	// ErrInvalidFormat indicates a string that does not parse as dotted-decimal CIDR
	ErrInvalidFormat = errors.New("invalid CIDR format")
	// ErrOctetRange indicates an octet outside 0-255
	ErrOctetRange = errors.New("octet out of range")
	// ErrPrefixRange indicates a prefix length outside 0-32
	ErrPrefixRange = errors.New("prefix length out of range")
)
