package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// berlekampMassey returns the linear complexity (shortest LFSR length
// over GF(2) that generates s) via the classic connection/discrepancy
// polynomial synthesis. Blocks used by the linear complexity test are
// at most 5000 bits, well inside the budget for a plain per-bit
// GF(2) polynomial update; no word-packed variant is needed.
func berlekampMassey(s []int) int {
	n := len(s)
	c := []int{1}
	b := []int{1}

	l := 0
	m := -1

	for nIdx := 0; nIdx < n; nIdx++ {
		d := s[nIdx]
		for i := 1; i <= min(l, len(c)-1); i++ {
			d += c[i] * s[nIdx-i]
		}
		d %= 2

		if d == 1 {
			t := append([]int(nil), c...)
			shift := nIdx - m
			addShift(&c, b, shift)

			if l <= nIdx/2 {
				l = nIdx + 1 - l
				m = nIdx
				b = t
			}
		}
	}
	return l
}

// addShift sets c = c + b*D^e over GF(2) (polynomial add with b
// shifted up by e coefficients), extending c as needed.
func addShift(c *[]int, b []int, e int) {
	cc := *c
	switch {
	case len(cc) <= e:
		for len(cc) < e {
			cc = append(cc, 0)
		}
		cc = append(cc, b...)
	case len(cc) <= e+len(b):
		i, j := e, 0
		for i < len(cc) {
			cc[i] = (cc[i] + b[j]) % 2
			i++
			j++
		}
		for j < len(b) {
			cc = append(cc, b[j])
			j++
		}
	default:
		i, j := e, 0
		for j < len(b) {
			cc[i] = (cc[i] + b[j]) % 2
			i++
			j++
		}
	}
	*c = cc
}

// linearComplexity partitions the stream into N disjoint m-bit blocks,
// runs Berlekamp-Massey on each, and bins the resulting complexities
// against their expected distribution under randomness.
func linearComplexity(s *bitsample.Sample, m int) Result {
	n := s.Len()
	nBlocks := n / m

	pi := [7]float64{0.010417, 0.03125, 0.125, 0.5, 0.25, 0.0625, 0.020833}
	var nu [7]int

	sign := 1.0
	if m%2 != 0 {
		sign = -1.0
	}
	mean := float64(m)/2 + (9-sign)/36 - (1/math.Pow(2, float64(m)))*(float64(m)/3+2.0/9.0)

	block := make([]int, m)
	for b := 0; b < nBlocks; b++ {
		base := b * m
		for i := 0; i < m; i++ {
			block[i] = s.GetBit(base + i)
		}
		l := berlekampMassey(block)
		t := sign*(float64(l)-mean) + 2.0/9.0

		switch {
		case t <= -2.5:
			nu[0]++
		case t <= -1.5:
			nu[1]++
		case t <= -0.5:
			nu[2]++
		case t <= 0.5:
			nu[3]++
		case t <= 1.5:
			nu[4]++
		case t <= 2.5:
			nu[5]++
		default:
			nu[6]++
		}
	}

	chi2 := 0.0
	for i := 0; i < 7; i++ {
		np := float64(nBlocks) * pi[i]
		d := float64(nu[i]) - np
		chi2 += d * d / np
	}
	pv := numerics.Igamc(3, chi2/2)
	return Result{pv, pv}
}
