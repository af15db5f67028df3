// Package aggregate combines per-sample, per-test results across a
// corpus into two independent pass/fail gates: a proportion gate on
// p-values and a uniformity gate on the q-value distribution.
package aggregate

import (
	"math"
	"sort"

	"github.com/opengm/gmrts/kernels"
	"github.com/opengm/gmrts/numerics"
)

// Alpha is the standard's default significance level.
const Alpha = 0.01

// UniformityAlpha is the minimum acceptable q-value uniformity
// p-value (the standard's alpha_T).
const UniformityAlpha = 1e-4

// SampleDistributionK is the number of equal-width bins the q-value
// uniformity gate partitions [0, 1] into.
const SampleDistributionK = 10

// TestSummary holds one test's aggregate statistics across a corpus.
type TestSummary struct {
	Tester        kernels.Tester
	SampleCount   int
	PassCount     int
	Waterline     int
	PPassGate     bool
	Uniformity    float64
	QGatePass     bool
	QValueHist    [SampleDistributionK]int
}

// Report is the aggregator's full output: per-test summaries plus the
// overall verdict.
type Report struct {
	Tests   []TestSummary
	Pass    bool
	Failing []kernels.Tester
}

// Waterline returns the minimum p-value pass count required to clear
// the proportion gate for s samples at significance level alpha.
func Waterline(alpha float64, s int) int {
	sf := float64(s)
	threshold := sf * (1 - alpha - 3*math.Sqrt(alpha*(1-alpha)/sf))
	return int(math.Ceil(threshold))
}

// Aggregate summarises results[tester][sampleIndex] across every
// tester, in a deterministic tester order.
func Aggregate(testers []kernels.Tester, results map[kernels.Tester][]kernels.Result) Report {
	var rep Report
	for _, tester := range testers {
		rs := results[tester]
		rep.Tests = append(rep.Tests, summarize(tester, rs))
	}

	overallPass := true
	for _, ts := range rep.Tests {
		if !ts.PPassGate || !ts.QGatePass {
			overallPass = false
			rep.Failing = append(rep.Failing, ts.Tester)
		}
	}
	rep.Pass = overallPass
	return rep
}

func summarize(tester kernels.Tester, rs []kernels.Result) TestSummary {
	s := len(rs)
	ts := TestSummary{Tester: tester, SampleCount: s}
	if s == 0 {
		return ts
	}

	passCount := 0
	for _, r := range rs {
		if r.Pass(Alpha) {
			passCount++
		}
	}
	ts.PassCount = passCount
	ts.Waterline = Waterline(Alpha, s)
	ts.PPassGate = passCount >= ts.Waterline

	for _, r := range rs {
		bin := int(r.QV * SampleDistributionK)
		if bin >= SampleDistributionK {
			bin = SampleDistributionK - 1
		}
		ts.QValueHist[bin]++
	}

	chi2 := 0.0
	expected := float64(s) / SampleDistributionK
	for _, f := range ts.QValueHist {
		d := float64(f) - expected
		chi2 += d * d / expected
	}
	ts.Uniformity = numerics.Igamc(float64(SampleDistributionK-1)/2, chi2/2)
	ts.QGatePass = ts.Uniformity >= UniformityAlpha

	return ts
}

// SortedTesters returns testers in a stable display order: grouped by
// tag, then by parameter.
func SortedTesters(testers []kernels.Tester) []kernels.Tester {
	out := append([]kernels.Tester(nil), testers...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tag != out[j].Tag {
			return out[i].Tag < out[j].Tag
		}
		return out[i].Param < out[j].Param
	})
	return out
}
