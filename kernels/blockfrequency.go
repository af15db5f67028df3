package kernels

import (
	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// blockFrequency partitions the stream into N disjoint m-bit blocks and
// compares each block's bias pi = pop(block)/m - 0.5 against the
// chi-square null.
func blockFrequency(s *bitsample.Sample, m int) Result {
	n := s.Len()
	nBlocks := n / m
	v := 0.0
	for b := 0; b < nBlocks; b++ {
		base := b * m
		pop := 0
		for i := 0; i < m; i++ {
			pop += s.GetBit(base + i)
		}
		pi := float64(pop)/float64(m) - 0.5
		v += pi * pi
	}
	pv := numerics.Igamc(float64(nBlocks)/2, v*2*float64(m))
	return Result{pv, pv}
}
