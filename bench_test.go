package cidr4 //nolint:testpackage // it's OK to be just cidr4

import "testing"

var (
	sinkBool  bool
	sinkBlock Block
)

func BenchmarkParseBlock(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseBlock("10.0.16.0/20"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOverlaps(b *testing.B) {
	b.ReportAllocs()
	x := MustParseBlock("10.0.0.0/20")
	y := MustParseBlock("10.0.8.0/21")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBool = Overlaps(x, y)
	}
}

func BenchmarkAllocate(b *testing.B) {
	b.ReportAllocs()
	seed := MustParseBlock("10.0.0.0/16")
	reserved := []Block{
		MustParseBlock("10.0.0.0/20"),
		MustParseBlock("10.0.16.0/20"),
		MustParseBlock("10.0.32.0/20"),
		MustParseBlock("10.0.48.0/20"),
	}
	SortBlocks(reserved)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBlock = Allocate(seed, reserved)
	}
}

func BenchmarkAllocateChecked(b *testing.B) {
	b.ReportAllocs()
	seed := MustParseBlock("10.0.0.0/16")
	reserved := []Block{
		MustParseBlock("10.0.0.0/20"),
		MustParseBlock("10.0.16.0/20"),
		MustParseBlock("10.16.0.0/12"),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBlock, sinkBool = AllocateChecked(seed, reserved)
	}
}
