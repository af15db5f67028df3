package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// frequency is the monobit test: S = 2*pop - n, pv = erfc(|S|/sqrt(2n)).
func frequency(s *bitsample.Sample) Result {
	n := s.Len()
	sVal := 2*float64(s.Pop()) - float64(n)
	denom := math.Sqrt(2 * float64(n))
	pv := numerics.Erfc(math.Abs(sVal) / denom)
	qv := numerics.Erfc(sVal/denom) / 2
	return Result{pv, qv}
}
