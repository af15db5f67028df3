package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// discreteFourier runs a real FFT over the stream's 0/1 values and
// counts how many of the first half of its magnitude spectrum fall
// under the 95% confidence threshold. The DC term is recovered
// directly from pop rather than read out of the transform, and every
// other magnitude is doubled to compensate for using {0,1} input
// instead of {-1,+1} (linear in the input, so this avoids allocating
// a second signed copy of the stream).
func discreteFourier(s *bitsample.Sample) Result {
	n := s.Len()
	in := make([]float64, n)
	for i := 0; i < n; i++ {
		in[i] = float64(s.GetBit(i))
	}
	f := numerics.FFT(in)

	threshold := math.Sqrt(2.995732274 * float64(n))

	n1 := 0
	dc := math.Abs(2*float64(s.Pop()) - float64(n))
	if dc < threshold {
		n1++
	}
	for k := 1; k < n/2; k++ {
		mag := 2 * cmplxAbs(f[k])
		if mag < threshold {
			n1++
		}
	}

	d := (float64(n1) - 0.95*float64(n)/2) / math.Sqrt(float64(n)*0.95*0.05/3.8)
	pv := numerics.Erfc(math.Abs(d) / math.Sqrt2)
	qv := numerics.Erfc(d/math.Sqrt2) / 2
	return Result{pv, qv}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
