package kernels

import (
	"math"

	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// runDistributionCap selects K such that the expected count of runs of
// length K is at least 5 and the expected count at K+1 drops below 1,
// per Annex B's tabulated values for the common sizes and a generic
// search otherwise.
func runDistributionCap(n int) int {
	switch n {
	case 100:
		return 2
	case 1000:
		return 5
	case 10000:
		return 8
	case 100000:
		return 12
	case 1000000:
		return 15
	case 10000000:
		return 18
	case 100000000:
		return 22
	}
	k := 0
	for i := 1; i <= n; i++ {
		e := float64(n-i+3) / math.Pow(2, float64(i+2))
		if e >= 5 {
			if i > k {
				k = i
			}
		}
		if e < 1 {
			break
		}
	}
	return k
}

func clampRun(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runsDistribution tallies runs of ones (bi) and runs of zeros (gi) by
// length, capped at K, and compares both families jointly against the
// geometric null via a single chi-square statistic.
func runsDistribution(s *bitsample.Sample) Result {
	n := s.Len()
	k := runDistributionCap(n)

	bi := make([]int, k+1)
	gi := make([]int, k+1)

	currentRun := 2*s.GetBit(0) - 1
	for i := 1; i < n; i++ {
		if s.GetBit(i) == 1 {
			if currentRun < 0 {
				gi[clampRun(-currentRun, 0, k)]++
				currentRun = 1
			} else {
				currentRun++
			}
		} else {
			if currentRun > 0 {
				bi[clampRun(currentRun, 0, k)]++
				currentRun = -1
			} else {
				currentRun--
			}
		}
	}
	if currentRun > 0 {
		bi[clampRun(currentRun, 0, k)]++
	} else {
		gi[clampRun(-currentRun, 0, k)]++
	}

	t := 0.0
	for i := 1; i <= k; i++ {
		t += float64(bi[i] + gi[i])
	}

	chi2 := 0.0
	for i := 1; i <= k; i++ {
		var e float64
		if i < k {
			e = t / math.Pow(2, float64(i+1))
		} else {
			e = t / math.Pow(2, float64(k))
		}
		db := float64(bi[i]) - e
		dg := float64(gi[i]) - e
		chi2 += (db*db + dg*dg) / e
	}

	pv := numerics.Igamc(float64(k-1), chi2/2)
	return Result{pv, pv}
}
