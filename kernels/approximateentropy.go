package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// phi computes Sum c_i*ln(c_i) over the overlapping m-bit pattern
// histogram, c_i = count_i/n, skipping patterns that never occur.
func phi(s *bitsample.Sample, m int) float64 {
	if m == 0 {
		return 0
	}
	n := float64(s.Len())
	hist := s.Patterns(m)
	sum := 0.0
	for _, x := range hist {
		if x == 0 {
			continue
		}
		c := float64(x) / n
		sum += c * math.Log(c)
	}
	return sum
}

// approximateEntropy compares the regularity of m-bit and (m+1)-bit
// pattern distributions.
func approximateEntropy(s *bitsample.Sample, m int) Result {
	n := s.Len()
	apen := phi(s, m) - phi(s, m+1)
	v := 2 * float64(n) * (math.Ln2 - apen)
	pv := numerics.Igamc(math.Pow(2, float64(m-1)), v/2)
	return Result{pv, pv}
}
