package bitsample

import (
	"testing"

	"github.com/google/gofuzz"
	deep "github.com/go-test/deep"
)

// TestFuzzByteRoundTripPreservesBits generates random byte buffers and
// checks that constructing a Sample and reading back every bit via
// GetBit reproduces the original buffer exactly, catching any drift
// between the byte buffer and the word-packed buffer.
func TestFuzzByteRoundTripPreservesBits(t *testing.T) {
	fz := fuzz.New().NilChance(0).NumElements(1, 256)
	for i := 0; i < 200; i++ {
		var b []byte
		fz.Fuzz(&b)
		if len(b) == 0 {
			continue
		}
		s := NewFromBytes(b)

		got := make([]byte, len(b))
		for bit := 0; bit < s.Len(); bit++ {
			got[bit/8] |= byte(s.GetBit(bit)) << uint(7-bit%8)
		}
		if diff := deep.Equal(b, got); diff != nil {
			t.Fatalf("round trip mismatch for %x: %v", b, diff)
		}
	}
}

// TestFuzzPatternsAlwaysSumToBitLength is the same property
// TestPatternsSumToBitLength checks, but driven by random input rather
// than a single fixed vector.
func TestFuzzPatternsAlwaysSumToBitLength(t *testing.T) {
	fz := fuzz.New().NilChance(0).NumElements(1, 64)
	for i := 0; i < 200; i++ {
		var b []byte
		fz.Fuzz(&b)
		if len(b) == 0 {
			continue
		}
		s := NewFromBytes(b)
		for m := 2; m <= 8; m++ {
			hist := s.Patterns(m)
			var sum uint64
			for _, c := range hist {
				sum += c
			}
			if sum != uint64(s.Len()) {
				t.Fatalf("m=%d: patterns summed to %d, want %d (input %x)", m, sum, s.Len(), b)
			}
		}
	}
}
