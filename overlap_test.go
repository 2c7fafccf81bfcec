package cidr4 //nolint:testpackage // it's OK to be just cidr4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"10.0.0.0/20", "10.0.8.0/21", true},   // nested ranges
		{"10.0.0.0/20", "10.0.16.0/20", false}, // disjoint siblings
		{"10.0.0.0/8", "10.200.0.0/16", true},
		{"0.0.0.0/0", "203.0.113.0/24", true}, // /0 covers everything
		{"10.0", "10.0.128.0/17", true},
		{"192.168.0.0/24", "192.168.1.0/24", false},
		{"172.16.0.0/12", "172.32.0.0/12", false},
	}
	for _, tt := range tests {
		a, b := MustParseBlock(tt.a), MustParseBlock(tt.b)
		assert.Equal(t, tt.want, Overlaps(a, b), "Overlaps(%s, %s)", tt.a, tt.b)
		// Overlap is symmetric
		assert.Equal(t, tt.want, Overlaps(b, a), "Overlaps(%s, %s)", tt.b, tt.a)
	}
}

// TestOverlapsSelf: every block overlaps itself.
func TestOverlapsSelf(t *testing.T) {
	for _, s := range []string{"0.0.0.0/0", "10.0.0.0/20", "255.255.255.255/32", "10.0"} {
		b := MustParseBlock(s)
		assert.True(t, Overlaps(b, b), s)
	}
}

func TestOverlapsAny(t *testing.T) {
	blk := MustParseBlock("10.0.0.0/24")
	taken := []Block{MustParseBlock("192.168.0.0/16"), MustParseBlock("10.0.0.128/25")}
	disjoint := []Block{MustParseBlock("172.16.0.0/12")}

	assert.True(t, OverlapsAny(blk, disjoint, taken)) // match in the second list
	assert.False(t, OverlapsAny(blk, disjoint))
	assert.False(t, OverlapsAny(blk))
	assert.False(t, OverlapsAny(blk, nil, []Block{}))
}
