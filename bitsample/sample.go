// Package bitsample implements the packed-bit Sample container shared
// by every statistical kernel: a byte view, a big-endian word view,
// cached popcount, and the lazily-memoised overlapping-pattern and
// longest-run caches. Construction is linear in the input length;
// everything else is computed once and read many times.
package bitsample

import (
	"fmt"
	"sync"

	"github.com/opengm/gmrts/internal/bitset"
	"github.com/opengm/gmrts/internal/digest"
)

// Sample is immutable after construction except for its two lazily
// filled memoisation slots, both guarded by mu using a double-checked
// lock: readers try an unlocked-adjacent read under the lock, and if
// absent compute outside the lock before briefly re-locking to store.
type Sample struct {
	b         []byte
	b64       []uint64
	bitLength int
	pop       uint64
	digest    digest.Digest

	mu         sync.Mutex
	patterns   map[int][]uint64
	longestRun *[2]longestRunResult
}

type longestRunResult struct {
	pv, qv float64
}

// NewFromBytes constructs a Sample whose stream is the bits of b,
// MSB-first within each byte, for the full byte length (bitLength =
// 8*len(b)).
func NewFromBytes(b []byte) *Sample {
	buf := make([]byte, len(b))
	copy(buf, b)
	return newSample(buf, len(buf)*8)
}

// NewFromBitString constructs a Sample from an ASCII string of '0'/'1'
// characters. The bit length is exactly len(s); the backing byte
// buffer is zero-padded up to the next byte boundary, and those
// padding bits never participate in any computation because they lie
// past bitLength.
func NewFromBitString(s string) *Sample {
	n := len(s)
	buf := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		if s[i] == '1' {
			buf[i/8] |= 1 << uint(7-i%8)
		} else if s[i] != '0' {
			panic(fmt.Sprintf("bitsample: bit string must contain only '0' and '1', got %q at offset %d", s[i], i))
		}
	}
	return newSample(buf, n)
}

func newSample(b []byte, bitLength int) *Sample {
	b64 := packWords(b)
	return &Sample{
		b:         b,
		b64:       b64,
		bitLength: bitLength,
		pop:       popcountTail(b, bitLength),
		digest:    digest.Of(b),
	}
}

// packWords packs b into big-endian 64-bit words, left-aligned and
// zero-padded in the final word, matching the stream's MSB-first
// convention: bit i of the stream is bit (63 - i%64) of b64[i/64].
func packWords(b []byte) []uint64 {
	nWords := (len(b) + 7) / 8
	words := make([]uint64, nWords)
	for i := 0; i < nWords; i++ {
		start := i * 8
		end := start + 8
		if end > len(b) {
			end = len(b)
		}
		words[i] = bitset.U64FromBESlice(b[start:end])
	}
	return words
}

// popcountTail sums set bits among the first bitLength bits only,
// ignoring any padding bits beyond it in the final byte.
func popcountTail(b []byte, bitLength int) uint64 {
	fullBytes := bitLength / 8
	pop := bitset.PopcountBytes(b[:fullBytes])
	for i := fullBytes * 8; i < bitLength; i++ {
		bytePos := i / 8
		bitPos := uint(7 - i%8)
		if (b[bytePos]>>bitPos)&1 == 1 {
			pop++
		}
	}
	return pop
}

// Len returns the sample's bit length.
func (s *Sample) Len() int { return s.bitLength }

// Pop returns the cached popcount of the full stream.
func (s *Sample) Pop() uint64 { return s.pop }

// Bytes returns the packed byte buffer. Callers must not mutate it.
func (s *Sample) Bytes() []byte { return s.b }

// Words returns the packed big-endian word buffer. Callers must not
// mutate it.
func (s *Sample) Words() []uint64 { return s.b64 }

// Digest returns the sample's content digest, used only as a cache key.
func (s *Sample) Digest() digest.Digest { return s.digest }

// GetBit returns the bit at stream offset i (0-indexed, MSB-first).
func (s *Sample) GetBit(i int) int {
	return int((s.b64[i/64] >> uint(63-i%64)) & 1)
}

// TailBits returns the number of valid bits in the final word (in
// [1,64], or 0 if the sample is empty).
func (s *Sample) TailBits() int {
	if s.bitLength == 0 {
		return 0
	}
	r := s.bitLength % 64
	if r == 0 {
		return 64
	}
	return r
}
