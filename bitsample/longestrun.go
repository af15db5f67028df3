package bitsample

import "github.com/opengm/gmrts/numerics"

// longestRunParams returns the block length M, category count K, the
// lowest exact category boundary, and the reference probabilities for
// GM/T 0005-2021's longest-run-within-a-block test, selected by total
// stream length exactly as Annex B's parameter table specifies.
func longestRunParams(n int) (m, k, vMin int, pi []float64) {
	switch {
	case n < 6272:
		return 8, 3, 1, []float64{0.2148, 0.3672, 0.2305, 0.1875}
	case n < 750000:
		return 128, 5, 4, []float64{0.1174, 0.2430, 0.2494, 0.1752, 0.1027, 0.1124}
	default:
		return 10000, 6, 10, []float64{0.086632, 0.208201, 0.248419, 0.193913, 0.121458, 0.068011, 0.073366}
	}
}

// categorize clamps a block's longest-run length into [0, k]: category
// 0 means the run was vMin or shorter, category i in (0, k) means it
// equalled exactly vMin+i, and category k means vMin+k or longer.
func categorize(run, vMin, k int) int {
	idx := run - vMin
	if idx < 0 {
		idx = 0
	}
	if idx > k {
		idx = k
	}
	return idx
}

// LongestRun returns the (p-value, q-value) of the longest-run-of-0s
// test when polarity is 0, or longest-run-of-1s when polarity is 1.
// Both polarities are computed together on first call, in a single
// pass over the blocks, and memoised under a double-checked lock.
func (s *Sample) LongestRun(polarity int) (pv, qv float64) {
	s.mu.Lock()
	if s.longestRun != nil {
		r := s.longestRun[polarity]
		s.mu.Unlock()
		return r.pv, r.qv
	}
	s.mu.Unlock()

	results := s.computeLongestRun()

	s.mu.Lock()
	if s.longestRun == nil {
		s.longestRun = &results
	}
	r := s.longestRun[polarity]
	s.mu.Unlock()
	return r.pv, r.qv
}

func (s *Sample) computeLongestRun() [2]longestRunResult {
	n := s.bitLength
	m, k, vMin, pi := longestRunParams(n)
	nBlocks := n / m

	nu0 := make([]int, k+1)
	nu1 := make([]int, k+1)

	for b := 0; b < nBlocks; b++ {
		base := b * m
		run0, max0 := 0, 0
		run1, max1 := 0, 0
		for i := 0; i < m; i++ {
			if s.GetBit(base+i) == 1 {
				run1++
				run0 = 0
				if run1 > max1 {
					max1 = run1
				}
			} else {
				run0++
				run1 = 0
				if run0 > max0 {
					max0 = run0
				}
			}
		}
		nu0[categorize(max0, vMin, k)]++
		nu1[categorize(max1, vMin, k)]++
	}

	pv0, qv0 := longestRunStats(nu0, nBlocks, k, pi)
	pv1, qv1 := longestRunStats(nu1, nBlocks, k, pi)

	return [2]longestRunResult{
		{pv: pv0, qv: qv0},
		{pv: pv1, qv: qv1},
	}
}

func longestRunStats(nu []int, nBlocks, k int, pi []float64) (pv, qv float64) {
	chi2 := 0.0
	for i, v := range nu {
		expected := float64(nBlocks) * pi[i]
		d := float64(v) - expected
		chi2 += d * d / expected
	}
	pv = numerics.Igamc(float64(k)/2, chi2/2)
	qv = pv
	return pv, qv
}
