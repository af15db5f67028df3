package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opengm/gmrts/bitsample"
)

const vec128 = "11001100000101010110110001001100111000000000001001001101010100010001001111010110100000001101011111001100111001101101100010110010"

const vec100 = "1100100100001111110110101010001000100001011010001100001000110100110001001100011001100010100010111000"

func TestFrequency(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: Frequency})
	assert.InDelta(t, 0.215925, r.PV, 1e-3)
}

func TestBlockFrequency(t *testing.T) {
	s := bitsample.NewFromBitString(vec100)
	r := Run(s, Tester{Tag: BlockFrequency, Param: 10})
	assert.InDelta(t, 0.706438, r.PV, 1e-3)
}

func TestPoker(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: Poker, Param: 4})
	assert.InDelta(t, 0.213734, r.PV, 1e-3)
}

func TestSerial1(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: Serial1, Param: 2})
	assert.InDelta(t, 0.436868, r.PV, 1e-3)
}

func TestSerial2(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: Serial2, Param: 2})
	assert.InDelta(t, 0.723674, r.PV, 1e-3)
}

func TestRuns(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: Runs})
	assert.InDelta(t, 0.620729, r.PV, 1e-3)
}

func TestRunsDistribution(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: RunsDistribution})
	assert.InDelta(t, 0.970152, r.PV, 1e-3)
}

func TestLongestRun(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r0 := Run(s, Tester{Tag: LongestRun0})
	assert.InDelta(t, 0.839299, r0.PV, 1e-3)
	r1 := Run(s, Tester{Tag: LongestRun1})
	assert.InDelta(t, 0.180598, r1.PV, 1e-3)
}

func TestBinaryDerivative(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: BinaryDerivative, Param: 3})
	assert.InDelta(t, 0.039669, r.PV, 1e-3)
}

func TestAutocorrelation(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r := Run(s, Tester{Tag: Autocorrelation, Param: 1})
	assert.InDelta(t, 0.790080, r.PV, 1e-3)
}

func TestCumulativeSums(t *testing.T) {
	s := bitsample.NewFromBitString(vec100)
	rf := Run(s, Tester{Tag: CumulativeSumsForward})
	assert.InDelta(t, 0.219194, rf.PV, 1e-3)
	rb := Run(s, Tester{Tag: CumulativeSumsBackward})
	assert.InDelta(t, 0.114866, rb.PV, 1e-3)
}

func TestApproximateEntropy(t *testing.T) {
	s := bitsample.NewFromBitString(vec100)
	r := Run(s, Tester{Tag: ApproximateEntropy, Param: 2})
	assert.InDelta(t, 0.235301, r.PV, 1e-3)
}

func TestDiscreteFourier(t *testing.T) {
	s := bitsample.NewFromBitString(vec100)
	r := Run(s, Tester{Tag: DiscreteFourier})
	assert.InDelta(t, 0.654721, r.PV, 1e-3)
}

func TestLongestRunPolarityOrderIndependent(t *testing.T) {
	s := bitsample.NewFromBitString(vec128)
	r1a := Run(s, Tester{Tag: LongestRun1})
	r0a := Run(s, Tester{Tag: LongestRun0})

	s2 := bitsample.NewFromBitString(vec128)
	r0b := Run(s2, Tester{Tag: LongestRun0})
	r1b := Run(s2, Tester{Tag: LongestRun1})

	assert.Equal(t, r0a, r0b)
	assert.Equal(t, r1a, r1b)
}

func TestBerlekampMasseyVectors(t *testing.T) {
	cases := []struct {
		s    []int
		want int
	}{
		{[]int{0, 0, 1, 1, 0, 1, 1, 1, 0}, 5},
		{[]int{0, 0, 0}, 0},
		{[]int{0, 0, 1}, 3},
		{[]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 1},
		{[]int{1, 1, 0, 1, 1, 0}, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, berlekampMassey(c.s))
	}
}
