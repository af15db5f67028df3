package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// psi2 computes the overlapping-pattern chi-square statistic for
// window length m, reusing the sample's pattern cache. m may be zero
// or negative at the low end of Serial2's three-term difference; both
// degenerate to the statistic for the empty window, which is zero.
func psi2(s *bitsample.Sample, m int) float64 {
	if m <= 0 {
		return 0
	}
	n := s.Len()
	hist := s.Patterns(m)
	var sumSq uint64
	for _, c := range hist {
		sumSq += c * c
	}
	return float64(sumSq)/float64(n)*float64(uint64(1)<<uint(m)) - float64(n)
}

func serial1(s *bitsample.Sample, m int) Result {
	p0 := psi2(s, m)
	p1 := psi2(s, m-1)
	del1 := p0 - p1
	pv := numerics.Igamc(math.Pow(2, float64(m-2)), del1/2)
	return Result{pv, pv}
}

func serial2(s *bitsample.Sample, m int) Result {
	p0 := psi2(s, m)
	p1 := psi2(s, m-1)
	p2 := psi2(s, m-2)
	del2 := p0 - 2*p1 + p2
	pv := numerics.Igamc(math.Pow(2, float64(m-3)), del2/2)
	return Result{pv, pv}
}
