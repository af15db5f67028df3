package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

const (
	universalL = 7
	universalQ = 1280
)

// bitsAt reads an L-bit big-endian code starting at stream offset i.
func bitsAt(s *bitsample.Sample, i, l int) int {
	v := 0
	for j := 0; j < l; j++ {
		v = (v << 1) | s.GetBit(i+j)
	}
	return v
}

// universal is Maurer's universal statistical test: it builds an
// initialisation table of the most recent occurrence of every 7-bit
// code over the first Q codes, then accumulates log2-gaps over the
// remaining K codes while continuing to update the table.
func universal(s *bitsample.Sample) Result {
	const e = 6.1962507
	const varT = 3.125

	n := s.Len()
	k := n/universalL - universalQ

	p := 1 << universalL
	table := make([]int, p)

	c := 0.7 - 0.8/universalL + (4+32.0/universalL)*math.Pow(float64(k), -3.0/universalL)/15.0
	sigma := c * math.Sqrt(varT/float64(k))

	sum := 0.0
	for i := 1; i <= universalQ; i++ {
		code := bitsAt(s, (i-1)*universalL, universalL)
		table[code] = i
	}
	for i := universalQ + 1; i <= universalQ+k; i++ {
		code := bitsAt(s, (i-1)*universalL, universalL)
		sum += math.Log(float64(i)-float64(table[code])) / math.Ln2
		table[code] = i
	}

	phi := sum / float64(k)
	v := (phi - e) / sigma

	pv := numerics.Erfc(math.Abs(v) / math.Sqrt2)
	qv := numerics.Erfc(v/math.Sqrt2) / 2
	return Result{pv, qv}
}
