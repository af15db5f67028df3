package bitsample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitStringAndByteConstructionAgree(t *testing.T) {
	bits := "1100100100001111110110101010001000100001011010001100001000110100110001001100011001100010100010111000"
	s1 := NewFromBitString(bits[:len(bits)/8*8])

	b := make([]byte, len(bits)/8)
	for i := range b {
		var v byte
		for j := 0; j < 8; j++ {
			v = v<<1 | (bits[i*8+j] - '0')
		}
		b[i] = v
	}
	s2 := NewFromBytes(b)

	assert.Equal(t, s1.Bytes()[:len(b)], s2.Bytes())
	assert.Equal(t, s1.Pop(), s2.Pop())
}

func TestPopcountMatchesBitLength(t *testing.T) {
	s := NewFromBitString("1010101010101")
	assert.EqualValues(t, 7, s.Pop())
	assert.Equal(t, 13, s.Len())
}

func TestPatternsSumToBitLength(t *testing.T) {
	s := NewFromBitString("110010010000111111011010101000100010000101101000110000100011")
	for m := 2; m <= 8; m++ {
		hist := s.Patterns(m)
		var sum uint64
		for _, c := range hist {
			sum += c
		}
		assert.EqualValues(t, s.Len(), sum, "m=%d", m)
	}
}

func TestPatternsMemoizedSameValue(t *testing.T) {
	s := NewFromBitString("110010010000111111011010101000100010000101101000110000100011")
	first := s.Patterns(4)
	second := s.Patterns(4)
	assert.Equal(t, first, second)
}

func TestTailBitsZero(t *testing.T) {
	s := NewFromBitString("101")
	assert.Equal(t, 3, s.TailBits())
	// the padding bits beyond bit_length must read as zero
	assert.Equal(t, byte(0b1010_0000), s.Bytes()[0])
}

func TestDigestStable(t *testing.T) {
	s1 := NewFromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	s2 := NewFromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	assert.Equal(t, s1.Digest(), s2.Digest())
	assert.False(t, s1.Digest().IsZero())
}
