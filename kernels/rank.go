package kernels

import (
	"github.com/opengm/gmrts/bitsample"
	"github.com/opengm/gmrts/numerics"
)

// matrixRank computes the GF(2) rank of a 32x32 bit matrix packed one
// row per uint32 (MSB-first within the row), via Gaussian elimination:
// for each row looking for a pivot (itself or a lower row with the bit
// set), swapping it up, then XORing it into every other row that has
// the pivot bit set.
func matrixRank(rows [32]uint32) int {
	rank := 0
	for col := 0; col < 32; col++ {
		bit := uint32(1) << uint(31-col)
		pivot := -1
		for r := rank; r < 32; r++ {
			if rows[r]&bit != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := 0; r < 32; r++ {
			if r != rank && rows[r]&bit != 0 {
				rows[r] ^= rows[rank]
			}
		}
		rank++
	}
	return rank
}

// rank partitions the stream into disjoint 32x32-bit matrices and
// tallies how many have full rank (32), rank 31, and rank <= 30.
func rank(s *bitsample.Sample) Result {
	const matrixBits = 1024
	n := s.Len()
	nMatrices := n / matrixBits

	var f32, f31, fLower int
	for mIdx := 0; mIdx < nMatrices; mIdx++ {
		base := mIdx * matrixBits
		var rows [32]uint32
		for r := 0; r < 32; r++ {
			var row uint32
			for c := 0; c < 32; c++ {
				row = (row << 1) | uint32(s.GetBit(base+r*32+c))
			}
			rows[r] = row
		}
		switch matrixRank(rows) {
		case 32:
			f32++
		case 31:
			f31++
		default:
			fLower++
		}
	}

	n32 := float64(f32)
	n31 := float64(f31)
	nLower := float64(fLower)
	total := float64(nMatrices)

	pi := [3]float64{0.2888, 0.5776, 0.1336}
	exp := [3]float64{total * pi[0], total * pi[1], total * pi[2]}
	obs := [3]float64{n32, n31, nLower}

	chi2 := 0.0
	for i := 0; i < 3; i++ {
		d := obs[i] - exp[i]
		chi2 += d * d / exp[i]
	}
	pv := numerics.Igamc(1, chi2/2)
	return Result{pv, pv}
}
