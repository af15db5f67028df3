package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// cumulativeSums walks the stream (forward, or in reverse when
// forward is false) accumulating a running sum of +-1 values and
// tracking its supremum and infimum; the excursion size z then drives
// two alternating-sign sums of the normal CDF.
func cumulativeSums(s *bitsample.Sample, forward bool) Result {
	n := s.Len()
	sSum, sup, inf, z := 0, 0, 0, 0

	walk := func(i int) {
		k := s.GetBit(i)
		sSum += 2*k - 1
		if sSum > sup {
			sup++
		}
		if sSum < inf {
			inf--
		}
		if sup > -inf {
			z = sup
		} else {
			z = -inf
		}
	}

	if forward {
		for i := 0; i < n; i++ {
			walk(i)
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			walk(i)
		}
	}

	nf := float64(n)
	zf := float64(z)
	sqrtN := math.Sqrt(nf)

	sum1 := 0.0
	for k := (-n/z + 1) / 4; k <= (n/z-1)/4; k++ {
		kf := float64(k)
		sum1 += numerics.Normal((4*kf+1)*zf/sqrtN) - numerics.Normal((4*kf-1)*zf/sqrtN)
	}

	sum2 := 0.0
	for k := (-n/z - 3) / 4; k <= (n/z-1)/4; k++ {
		kf := float64(k)
		sum2 += numerics.Normal((4*kf+3)*zf/sqrtN) - numerics.Normal((4*kf+1)*zf/sqrtN)
	}

	pv := 1.0 - sum1 + sum2
	return Result{pv, pv}
}
