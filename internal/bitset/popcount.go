package bitset

import "math/bits"

// PopcountBytes sums the population count of a packed byte buffer.
// math/bits.OnesCount8 is a 256-entry table lookup on most platforms,
// amd64 included, and a hardware intrinsic on a few others.
func PopcountBytes(b []byte) uint64 {
	var pop uint64
	for _, c := range b {
		pop += uint64(bits.OnesCount8(c))
	}
	return pop
}
