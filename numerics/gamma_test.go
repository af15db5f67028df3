package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgamcBounds(t *testing.T) {
	assert.Equal(t, 1.0, Igamc(1, 0))
	assert.Equal(t, 0.0, Igamc(0, 1))
	assert.InDelta(t, math.Exp(-1), Igamc(1, 1), 1e-9)
}

func TestIgamcIgamComplement(t *testing.T) {
	a, x := 3.5, 2.1
	assert.InDelta(t, 1.0, Igam(a, x)+Igamc(a, x), 1e-9)
}

func TestNormalMonotone(t *testing.T) {
	assert.InDelta(t, 0.5, Normal(0), 1e-9)
	assert.True(t, Normal(1) > Normal(0))
	assert.True(t, Normal(-1) < Normal(0))
}

func TestFFTPowerOfTwoMatchesNaive(t *testing.T) {
	in := []float64{1, 0, -1, 0, 1, 0, -1, 0}
	got := FFT(in)
	want := naiveDFT(in)
	for i := range got {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-9)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-9)
	}
}

func TestFFTArbitraryLengthMatchesNaive(t *testing.T) {
	in := []float64{1, -1, 1, 1, -1, -1, 1}
	got := FFT(in)
	want := naiveDFT(in)
	for i := range got {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-6)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-6)
	}
}

func naiveDFT(in []float64) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			ang := -2 * pi * float64(k) * float64(j) / float64(n)
			sum += complex(in[j], 0) * complex(math.Cos(ang), math.Sin(ang))
		}
		out[k] = sum
	}
	return out
}
