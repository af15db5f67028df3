// Package kernels implements the fifteen GM/T 0005-2021 statistical
// tests. Each kernel consumes a *bitsample.Sample and an optional
// integer parameter and returns a Result. Testers are plain
// comparable values so they can key maps directly, mirroring the
// teacher's own preference for small value types over interfaces in
// hot-path dispatch.
package kernels

import (
	"fmt"

	"github.com/opengm/gmrts/bitsample"
)

// Tag names one of the fifteen test functions.
type Tag int

const (
	Frequency Tag = iota
	BlockFrequency
	Poker
	Serial1
	Serial2
	Runs
	RunsDistribution
	LongestRun0
	LongestRun1
	BinaryDerivative
	Autocorrelation
	Rank
	CumulativeSumsForward
	CumulativeSumsBackward
	ApproximateEntropy
	LinearComplexity
	Universal
	DiscreteFourier
)

var tagNames = [...]string{
	"Frequency", "BlockFrequency", "Poker", "Serial1", "Serial2",
	"Runs", "RunsDistribution", "LongestRun0", "LongestRun1",
	"BinaryDerivative", "Autocorrelation", "Rank",
	"CumulativeSumsForward", "CumulativeSumsBackward",
	"ApproximateEntropy", "LinearComplexity", "Universal",
	"DiscreteFourier",
}

func (t Tag) String() string {
	if int(t) < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// Tester is a (function tag, optional parameter) pair. Tests that take
// no parameter leave Param at zero; callers must consult the parameter
// table (ExpandTesters) rather than guessing when zero is meaningful.
type Tester struct {
	Tag   Tag
	Param int
}

func (t Tester) String() string {
	if t.Param == 0 {
		return t.Tag.String()
	}
	return fmt.Sprintf("%s(%d)", t.Tag, t.Param)
}

// Result is a (p-value, q-value) pair, both in [0, 1].
type Result struct {
	PV, QV float64
}

// Pass reports whether the result clears the proportion gate at
// significance level alpha.
func (r Result) Pass(alpha float64) bool {
	return r.PV >= alpha
}

// equalTolerance is the tolerance ApproxEqual uses, per the data
// model's TestResult equality definition.
const equalTolerance = 1e-4

// ApproxEqual reports whether r and other agree to within the
// standard's TestResult equality tolerance.
func (r Result) ApproxEqual(other Result) bool {
	return absf(r.PV-other.PV) < equalTolerance && absf(r.QV-other.QV) < equalTolerance
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Run dispatches a single Tester against a Sample.
func Run(s *bitsample.Sample, t Tester) Result {
	switch t.Tag {
	case Frequency:
		return frequency(s)
	case BlockFrequency:
		return blockFrequency(s, t.Param)
	case Poker:
		return poker(s, t.Param)
	case Serial1:
		return serial1(s, t.Param)
	case Serial2:
		return serial2(s, t.Param)
	case Runs:
		return runs(s)
	case RunsDistribution:
		return runsDistribution(s)
	case LongestRun0:
		pv, qv := s.LongestRun(0)
		return Result{pv, qv}
	case LongestRun1:
		pv, qv := s.LongestRun(1)
		return Result{pv, qv}
	case BinaryDerivative:
		return binaryDerivative(s, t.Param)
	case Autocorrelation:
		return autocorrelation(s, t.Param)
	case Rank:
		return rank(s)
	case CumulativeSumsForward:
		return cumulativeSums(s, true)
	case CumulativeSumsBackward:
		return cumulativeSums(s, false)
	case ApproximateEntropy:
		return approximateEntropy(s, t.Param)
	case LinearComplexity:
		return linearComplexity(s, t.Param)
	case Universal:
		return universal(s)
	case DiscreteFourier:
		return discreteFourier(s)
	default:
		panic(fmt.Sprintf("kernels: unknown tester tag %v", t.Tag))
	}
}

// ExpandTesters returns the concrete Tester list appropriate for a
// sample of bit length n, following the three bit-length ranges the
// standard's parameter table specifies.
func ExpandTesters(n int) []Tester {
	ts := []Tester{
		{Tag: Frequency},
		{Tag: BlockFrequency, Param: blockFrequencyM(n)},
		{Tag: Poker, Param: 4},
		{Tag: Poker, Param: 8},
	}
	for _, m := range serialParams(n) {
		ts = append(ts, Tester{Tag: Serial1, Param: m}, Tester{Tag: Serial2, Param: m})
	}
	ts = append(ts,
		Tester{Tag: Runs},
		Tester{Tag: RunsDistribution},
		Tester{Tag: LongestRun0},
		Tester{Tag: LongestRun1},
	)
	for _, k := range binaryDerivativeParams(n) {
		ts = append(ts, Tester{Tag: BinaryDerivative, Param: k})
	}
	for _, d := range autocorrelationParams(n) {
		ts = append(ts, Tester{Tag: Autocorrelation, Param: d})
	}
	ts = append(ts, Tester{Tag: Rank},
		Tester{Tag: CumulativeSumsForward},
		Tester{Tag: CumulativeSumsBackward},
	)
	for _, m := range []int{2, 5} {
		ts = append(ts, Tester{Tag: ApproximateEntropy, Param: m})
	}
	if lc := linearComplexityParams(n); len(lc) > 0 {
		for _, m := range lc {
			ts = append(ts, Tester{Tag: LinearComplexity, Param: m})
		}
	}
	ts = append(ts, Tester{Tag: Universal}, Tester{Tag: DiscreteFourier})
	return ts
}

func blockFrequencyM(n int) int {
	switch {
	case n <= 20000:
		return 1000
	case n <= 1000000:
		return 10000
	default:
		return 1000000
	}
}

func serialParams(n int) []int {
	if n > 1000000 {
		return []int{3, 5, 7}
	}
	return []int{3, 5}
}

func binaryDerivativeParams(n int) []int {
	if n > 1000000 {
		return []int{3, 7, 15}
	}
	return []int{3, 7}
}

func autocorrelationParams(n int) []int {
	switch {
	case n <= 20000:
		return []int{2, 8, 16}
	case n <= 1000000:
		return []int{1, 2, 8, 16}
	default:
		return []int{1, 2, 8, 16, 32}
	}
}

func linearComplexityParams(n int) []int {
	switch {
	case n <= 20000:
		return nil
	case n <= 1000000:
		return []int{500, 1000}
	default:
		return []int{5000}
	}
}
