package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// runs counts the total number of runs (maximal constant-bit
// subsequences) in the stream, compared against its expectation under
// the sample's own observed bias.
func runs(s *bitsample.Sample) Result {
	n := s.Len()
	v := uint64(1)
	for i := 0; i < n-1; i++ {
		v += uint64(s.GetBit(i) ^ s.GetBit(i+1))
	}
	pi := float64(s.Pop()) / float64(n)
	t := 2 * pi * (1 - pi)
	denom := t * math.Sqrt(2*float64(n))
	diff := float64(v) - t*float64(n)
	pv := numerics.Erfc(math.Abs(diff) / denom)
	qv := numerics.Erfc(diff/denom) / 2
	return Result{pv, qv}
}
