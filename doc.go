// Package cidr4 provides IPv4 address-space bookkeeping: parsing CIDR
// blocks into their binary representation, testing blocks for overlap,
// ordering a reservation set canonically, and bump-allocating a new block
// past existing reservations. A small helper derives fixed-offset service
// addresses (for example base+2 for a DNS resolver) inside a block.
//
// All operations are pure functions over immutable inputs; the package
// holds no state and requires no synchronization. Persisting a chosen
// allocation between runs is the caller's job (see the planstore package).
//
// Example:
//
//	import "github.com/yago-123/cidr4"
//
//	reserved := []cidr4.Block{
//	    cidr4.MustParseBlock("10.0.0.0/20"),
//	    cidr4.MustParseBlock("10.0.16.0/20"),
//	}
//	cidr4.SortBlocks(reserved)
//
//	seed := cidr4.MustParseBlock("10.0.0.0/16")
//	block, ok := cidr4.AllocateChecked(seed, reserved)
//	if !ok {
//	    log.Fatal("address space exhausted")
//	}
//
//	resolver, err := cidr4.ServiceAddress(block.String(), 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
package cidr4
