package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// autocorrelation sums e[i] XOR e[i+d] over the stream, which measures
// correlation between a stream and its d-shifted copy.
func autocorrelation(s *bitsample.Sample, d int) Result {
	n := s.Len()
	m := n - d
	var sum int64
	for i := 0; i < m; i++ {
		sum += int64(s.GetBit(i) ^ s.GetBit(i+d))
	}
	v := (2*float64(sum) - float64(m)) / math.Sqrt(float64(m))
	pv := numerics.Erfc(math.Abs(v) / math.Sqrt2)
	qv := numerics.Erfc(v/math.Sqrt2) / 2
	return Result{pv, qv}
}
