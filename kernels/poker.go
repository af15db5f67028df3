package kernels

import (
	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// poker partitions the stream into N disjoint m-bit blocks (m is 4 or
// 8), builds the 2^m-way histogram of block values, and compares the
// sum of squares against its expectation under uniformity. This is
// exactly the m=4 and m=8 cases of the overlapping-pattern histogram,
// except non-overlapping, so it is computed directly rather than via
// the Sample pattern cache.
func poker(s *bitsample.Sample, m int) Result {
	n := s.Len()
	nBlocks := n / m
	power := 1 << uint(m)
	ni := make([]uint64, power)
	for b := 0; b < nBlocks; b++ {
		base := b * m
		idx := 0
		for i := 0; i < m; i++ {
			idx = (idx << 1) | s.GetBit(base+i)
		}
		ni[idx]++
	}
	var sumSq uint64
	for _, c := range ni {
		sumSq += c * c
	}
	v := float64(power)/float64(nBlocks)*float64(sumSq) - float64(nBlocks)
	pv := numerics.Igamc((float64(power)-1)/2, v/2)
	return Result{pv, pv}
}
