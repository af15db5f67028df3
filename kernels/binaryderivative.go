package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// binaryDerivative forms the k-th order XOR derivative e'[i] =
// XOR_{j=0..k} e[i+j] and sums its +-1 encoding over i in [0, n-k).
func binaryDerivative(s *bitsample.Sample, k int) Result {
	n := s.Len()
	m := n - k

	ei := 0
	for j := 0; j <= k; j++ {
		ei ^= s.GetBit(j)
	}
	sum := int64(ei)
	for i := 1; i < m; i++ {
		ei ^= s.GetBit(i - 1) ^ s.GetBit(i+k)
		sum += int64(ei)
	}
	sumSigned := 2*sum - int64(m)

	denom := math.Sqrt(float64(m)) * math.Sqrt2
	pv := numerics.Erfc(math.Abs(float64(sumSigned)) / denom)
	qv := numerics.Erfc(float64(sumSigned)/denom) / 2
	return Result{pv, qv}
}
